// Package file loads ARFF Relations from files on disk. Files ending in .lz4
// or .zst are decompressed transparently.
package file
