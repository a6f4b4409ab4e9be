package main

import (
	"fmt"

	"github.com/fwojciec/clinics"
	"github.com/fwojciec/clinics/csv"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Runs {
		return c.listRuns(deps)
	}

	filter := clinics.RecordFilter{Limit: c.Limit}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}
	if c.Area != "" {
		filter.Area = &c.Area
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		return err
	}

	return csv.NewWriter(deps.Stdout).WriteRecords(deps.Ctx, records)
}

func (c *ListCmd) listRuns(deps *Dependencies) error {
	runs, err := deps.Records.FindRuns(deps.Ctx)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'clinics scrape --db' to store one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d records\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Records)
	}
	return nil
}
