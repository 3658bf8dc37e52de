package tour

import "langtour/internal/config"

// DefaultRegistry builds the registry with every built-in section, in the
// order a full tour runs. cfg tunes the sections that take parameters.
func DefaultRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}

	r := NewRegistry()
	r.MustRegister(&Section{Name: "basics", Title: "Basics", Topic: TopicSyntax, Run: runBasics})
	r.MustRegister(&Section{Name: "flow", Title: "Control Flow", Topic: TopicSyntax, Run: runFlow})
	r.MustRegister(&Section{Name: "functions", Title: "Functions", Topic: TopicSyntax, Run: runFunctions})
	r.MustRegister(&Section{Name: "collections", Title: "Collections", Topic: TopicData, Run: runCollections})
	r.MustRegister(&Section{Name: "strings", Title: "Strings", Topic: TopicData, Run: runStrings})
	r.MustRegister(&Section{Name: "structs", Title: "Structs & Methods", Topic: TopicData, Run: runStructs})
	r.MustRegister(&Section{Name: "generics", Title: "Generics", Topic: TopicData, Run: runGenerics})
	r.MustRegister(&Section{Name: "errors", Title: "Error Handling", Topic: TopicBehavior, Run: runErrors})
	r.MustRegister(&Section{Name: "interfaces", Title: "Interfaces", Topic: TopicBehavior, Run: runInterfaces})
	r.MustRegister(&Section{Name: "signals", Title: "Message Variants", Topic: TopicBehavior, Run: runSignals})
	r.MustRegister(&Section{Name: "closures", Title: "Closures", Topic: TopicBehavior, Run: runClosures})
	r.MustRegister(&Section{
		Name:  "concurrency",
		Title: "Concurrency",
		Topic: TopicConcurrency,
		Run:   concurrencySection(cfg.Concurrency),
	})
	return r
}
