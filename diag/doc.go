// Package diag provides the two injectable diagnostic sinks a host
// graph writes user-visible text through: a console stream for
// human-facing output and a log stream for structured records. Neither
// sink is hard-wired to os.Stdout — the embedder supplies both, or
// accepts the io.Discard default from NewSinks(nil, nil).
//
// Grounded on the retrieval pack's own choice of log/slog over any
// third-party structured logger (see DESIGN.md): no example repository
// imports zap/logrus/zerolog, and dd0wney-graphdb/cmd/server/main.go
// builds its *slog.Logger over a plain io.Writer exactly as Sinks does
// here.
package diag
