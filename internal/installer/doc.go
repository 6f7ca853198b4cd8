// Package installer plans and performs filter installs. Installs are staged:
// the payload is copied to a temporary file inside the destination directory,
// made executable, flushed to stable storage, and only then renamed over the
// final name, so a failed copy never leaves a truncated filter where CUPS
// would execute it.
package installer
