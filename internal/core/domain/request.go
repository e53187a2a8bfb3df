package domain

// CompileRequest is a single invocation of the external compiler.
type CompileRequest struct {
	// Sources are the absolute paths of the files to compile.
	Sources []string
	// Classpath is the directory the compiler resolves already compiled classes from.
	Classpath string
	// OutputDir receives the produced class files.
	OutputDir string
}

// BuildRequest describes one invocation of the build orchestrator.
type BuildRequest struct {
	// ClasspathDir is the absolute output classpath directory.
	ClasspathDir string
	// SourceDir is the absolute source root.
	SourceDir string
	// MetaDir is the directory of the metadata store for SourceDir.
	MetaDir string
	// Exclude holds glob patterns, relative to SourceDir, of sources to ignore.
	Exclude []string
	// Force requests a full build even when metadata exists.
	Force bool
}

// BuildMode identifies the branch the orchestrator took.
type BuildMode string

const (
	// ModeFull is a from-scratch build of every source.
	ModeFull BuildMode = "full"
	// ModeIncremental recompiles only changed and affected sources.
	ModeIncremental BuildMode = "incremental"
	// ModeUpToDate means nothing needed compiling.
	ModeUpToDate BuildMode = "up-to-date"
)

// BuildResult summarizes a successful build.
type BuildResult struct {
	Mode BuildMode
	// Compiled holds the sources passed to the compiler, sorted.
	Compiled []string
	// Deleted holds the sources that disappeared since the previous build, sorted.
	Deleted []string
	// Classes is the number of classes recorded in the new metadata generation.
	Classes int
}
