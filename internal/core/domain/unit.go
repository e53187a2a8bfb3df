package domain

// UnitDescriptor describes one compiled class file as reported by the analyzer.
type UnitDescriptor struct {
	// Name is the fully-qualified class name.
	Name string
	// DependsOn holds the classes this unit references.
	DependsOn Set
	// SourceFile is the originating source path relative to the source root.
	SourceFile string
}
