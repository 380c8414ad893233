// Package file loads the reference corpus from a JSON file on disk and
// watches it for changes. The loader is a pure format adapter: it
// parses and maps records, leaving structural validation to the corpus
// store swap.
package file
