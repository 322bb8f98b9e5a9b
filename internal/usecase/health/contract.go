package health

import "context"

// DBPinger checks catalog store connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}
