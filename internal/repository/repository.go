package repository

// Package repository contains data access abstractions for the submission
// records. Implementations live in subpackages: postgres for the real
// store, noop for running without a database (submissions are then logged
// by the caller and intentionally not persisted).
