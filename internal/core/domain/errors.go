package domain

import "go.trai.ch/zerr"

var (
	// ErrIllegalArguments is returned when the command line does not name a classpath and a source directory.
	ErrIllegalArguments = zerr.New("illegal arguments")

	// ErrClasspathNotDirectory is returned when the output classpath exists but is not a directory.
	ErrClasspathNotDirectory = zerr.New("classpath provided is not a directory")

	// ErrClasspathContainsSources is returned when the output classpath is the source root or one of its parents.
	// Resetting such a classpath would delete the sources.
	ErrClasspathContainsSources = zerr.New("classpath contains the source directory")

	// ErrSourceDirNotFound is returned when the source root does not exist or is not a directory.
	ErrSourceDirNotFound = zerr.New("source directory not found")

	// ErrCompilationFailed is returned when the external compiler exits with a non-zero status.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrMetadataCorrupt is returned when a metadata artifact is missing or malformed.
	ErrMetadataCorrupt = zerr.New("metadata is missing or corrupt")

	// ErrMetadataResetFailed is returned when the metadata directory cannot be recreated.
	ErrMetadataResetFailed = zerr.New("failed to initialize metadata directory")

	// ErrMetadataWriteFailed is returned when a metadata artifact cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to save metadata")

	// ErrMetadataRemoveFailed is returned when the metadata directory cannot be removed.
	ErrMetadataRemoveFailed = zerr.New("failed to remove metadata")

	// ErrSourceDiscoveryFailed is returned when walking the source tree fails.
	ErrSourceDiscoveryFailed = zerr.New("failed to find source files")

	// ErrClassDiscoveryFailed is returned when walking a class output directory fails.
	ErrClassDiscoveryFailed = zerr.New("failed while finding class files")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to calculate hash for file")

	// ErrTempDirFailed is returned when a scratch directory cannot be created.
	ErrTempDirFailed = zerr.New("failed to create temporary directory")

	// ErrCleanDirFailed is returned when the output classpath cannot be emptied or created.
	ErrCleanDirFailed = zerr.New("failed to clean directory")

	// ErrCopyClassFailed is returned when a class file cannot be copied.
	ErrCopyClassFailed = zerr.New("failed to copy class")

	// ErrDeleteClassFailed is returned when a class file cannot be deleted.
	ErrDeleteClassFailed = zerr.New("failed to delete class file")

	// ErrProcessStartFailed is returned when an external tool cannot be launched.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrProcessFailed is returned when an external tool other than the compiler exits with a non-zero status.
	ErrProcessFailed = zerr.New("process returned a non-zero exit status")

	// ErrAnalyzerFailed is returned when a class file cannot be attributed to a name and source.
	ErrAnalyzerFailed = zerr.New("failed to describe class files")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHomeDirUnknown is returned when no metadata root is configured and the home directory is unknown.
	ErrHomeDirUnknown = zerr.New("failed to determine home directory")

	// ErrWatchFailed is returned when the source tree cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)
