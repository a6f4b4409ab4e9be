package main_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/fwojciec/clinics"
	main "github.com/fwojciec/clinics/cmd/clinics"
	"github.com/fwojciec/clinics/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints records as csv", func(t *testing.T) {
		t.Parallel()

		var got clinics.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter clinics.RecordFilter) ([]clinics.Record, error) {
				got = filter
				return []clinics.Record{{Area: "関東", Name: "Alpha Clinic"}}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: io.Discard, Records: records}

		err := (&main.ListCmd{RunID: "run-1", Area: "関東", Limit: 5}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.RunID)
		assert.Equal(t, "run-1", *got.RunID)
		require.NotNil(t, got.Area)
		assert.Equal(t, "関東", *got.Area)
		assert.Equal(t, 5, got.Limit)
		assert.Contains(t, stdout.String(), "関東,Alpha Clinic,,,,,,,")
	})

	t.Run("leaves filter open by default", func(t *testing.T) {
		t.Parallel()

		var got clinics.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter clinics.RecordFilter) ([]clinics.Record, error) {
				got = filter
				return nil, nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: io.Discard, Stderr: io.Discard, Records: records}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, got.RunID)
		assert.Nil(t, got.Area)
	})

	t.Run("returns lookup errors", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ clinics.RecordFilter) ([]clinics.Record, error) {
				return nil, clinics.Errorf(clinics.ENOTFOUND, "no runs stored")
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: io.Discard, Stderr: io.Discard, Records: records}

		err := (&main.ListCmd{}).Run(deps)

		assert.Equal(t, clinics.ENOTFOUND, clinics.ErrorCode(err))
	})

	t.Run("lists runs", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRunsFn: func(_ context.Context) ([]*clinics.Run, error) {
				return []*clinics.Run{{
					ID:        "run-1",
					Records:   42,
					CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
				}}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: io.Discard, Records: records}

		err := (&main.ListCmd{Runs: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "run-1  2026-01-15 10:00:00  42 records\n", stdout.String())
	})

	t.Run("reports no runs", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRunsFn: func(_ context.Context) ([]*clinics.Run, error) {
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: io.Discard, Records: records}

		err := (&main.ListCmd{Runs: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs found")
	})
}
