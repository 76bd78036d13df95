// Package testsupport holds golden file, template capture and logging helpers
// shared by the package tests.
package testsupport
