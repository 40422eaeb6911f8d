package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// poolSnapshot is the slice of pool state an operator reads off the health
// page, named the way the rest of the API names its JSON.
type poolSnapshot struct {
	Open  int32 `json:"open"`
	Idle  int32 `json:"idle"`
	InUse int32 `json:"inUse"`
	Max   int32 `json:"max"`
}

type healthReport struct {
	Status   string       `json:"status"`
	Database string       `json:"database"`
	Pool     poolSnapshot `json:"pool"`
	Error    string       `json:"error,omitempty"`
}

func snapshot(pool *pgxpool.Pool) poolSnapshot {
	st := pool.Stat()
	return poolSnapshot{
		Open:  st.TotalConns(),
		Idle:  st.IdleConns(),
		InUse: st.AcquiredConns(),
		Max:   st.MaxConns(),
	}
}

// HealthHandler answers whether the clinic database responds to a ping
// within five seconds, alongside a snapshot of the connection pool. A failed
// ping turns into a 503 so load balancers can rotate the instance out.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		report := healthReport{
			Status:   "up",
			Database: "reachable",
			Pool:     snapshot(pool),
		}
		if err := pool.Ping(ctx); err != nil {
			report.Status = "down"
			report.Database = "unreachable"
			report.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	}
}
