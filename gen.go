package soavec

// The per-arity container files (vec_N.go) are emitted from one template.
// Raise -max and re-run to support wider record shapes.

//go:generate go run ./cmd/soavec-gen -max 4 -out .
