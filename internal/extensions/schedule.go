package extensions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"regcli/internal/logging"
	"regcli/internal/registry"
)

const defaultScheduleCount = 5

// Schedule registers "schedule next", which previews the upcoming fire times
// of a cron expression.
func Schedule(env Env) registry.Provider {
	return func(r *registry.Registry) {
		r.Register("schedule", "next", registry.Handler{
			Doc: `Print the next fire times of a cron expression.

EXPR takes five fields (minute hour day-of-month month day-of-week) or a
descriptor such as @hourly or "@every 90m". Times are printed in RFC 3339
using the [schedule] timezone from the configuration.`,
			Params: []registry.ParamSpec{
				registry.Arg("expr", registry.TypeString),
				registry.Opt("count", registry.TypeInt, defaultScheduleCount),
				registry.Opt("from", registry.TypeString, ""),
			},
			Run: registry.Typed(decodeScheduleRequest, env.nextFireTimes),
		},
			registry.Help("Preview Cron Fire Times"),
			registry.ParamHelp(map[string]string{
				"expr":  "cron expression",
				"count": "number of fire times to print",
				"from":  "RFC 3339 start time; now when empty",
			}),
			registry.Override("count", registry.ArgOptions{Validate: positiveInt}),
			registry.Override("from", registry.ArgOptions{Validate: rfc3339OrEmpty, Metavar: "time"}),
		)
	}
}

type scheduleRequest struct {
	Schedule cron.Schedule
	Expr     string
	Count    int
	From     time.Time
}

func decodeScheduleRequest(args registry.Args) (scheduleRequest, error) {
	expr := strings.TrimSpace(args.String("expr"))
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return scheduleRequest{}, fmt.Errorf("parse cron expression %q: %w", expr, err)
	}
	req := scheduleRequest{Schedule: schedule, Expr: expr, Count: args.Int("count")}
	if from := strings.TrimSpace(args.String("from")); from != "" {
		// Already validated by the parser.
		req.From, _ = time.Parse(time.RFC3339, from)
	}
	return req, nil
}

func (e Env) nextFireTimes(_ context.Context, inv *registry.Invocation, req scheduleRequest) error {
	loc := e.config().Location()
	from := req.From
	if from.IsZero() {
		from = e.now()
	}
	from = from.In(loc)

	inv.Logger.Debug("computing fire times",
		logging.String("expr", req.Expr),
		logging.Int("count", req.Count),
		logging.String("from", from.Format(time.RFC3339)),
	)

	next := from
	for i := 0; i < req.Count; i++ {
		next = req.Schedule.Next(next)
		if next.IsZero() {
			if i == 0 {
				return fmt.Errorf("cron expression %q never fires", req.Expr)
			}
			break
		}
		if _, err := fmt.Fprintln(inv.Out, next.In(loc).Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}

func positiveInt(v any) error {
	n, ok := v.(int)
	if !ok || n <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func rfc3339OrEmpty(v any) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected RFC 3339 time such as 2024-01-02T15:04:05Z: %w", err)
	}
	return nil
}
