//go:build tools

package tools

// Developer tooling, not compiled into any binary.
//
//   - goose (migrations): declared with the go.mod tool directive,
//     run as `go tool goose -dir migrations postgres "$DATABASE_DSN" status`.
//   - moq (test doubles): `go install github.com/matryer/moq@latest`, then
//     `go generate ./internal/...` regenerates every *_mock_test.go file.
