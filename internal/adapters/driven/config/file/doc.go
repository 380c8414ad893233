// Package file persists the refdex configuration as a TOML file. The
// store is typed: callers read a complete AppConfig snapshot instead of
// fetching keys one by one.
package file
