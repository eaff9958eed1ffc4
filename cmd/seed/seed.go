package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"go.uber.org/zap"
)

// seedFile is the layout of a seed document
type seedFile struct {
	Camps  []map[string]any `json:"camps"`
	Donors []map[string]any `json:"donors"`
	Trusts []map[string]any `json:"trusts"`
}

// summary counts what a seed run did per kind
type summary struct {
	Created map[string]int
	Skipped map[string]int
}

func parseSeed(data []byte) (*seedFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// seed creates every record through the services so the same validation,
// defaults and uniqueness rules apply as for API clients. Duplicate donors
// are skipped, which makes re-running a seed safe.
func seed(ctx context.Context, f *seedFile, camps services.CampService, donors services.DonorService, trusts services.TrustService, logger *zap.Logger) (summary, error) {
	s := summary{Created: map[string]int{}, Skipped: map[string]int{}}

	apply := func(kind string, items []map[string]any, create func(map[string]any) error) error {
		for i, item := range items {
			err := create(item)
			switch {
			case err == nil:
				s.Created[kind]++
			case apperr.KindOf(err) == apperr.KindDuplicate:
				s.Skipped[kind]++
				logger.Info("skipping existing record", zap.String("kind", kind), zap.Int("index", i))
			default:
				return fmt.Errorf("%s[%d]: %w", kind, i, err)
			}
		}
		return nil
	}

	if err := apply("camps", f.Camps, func(p map[string]any) error {
		_, err := camps.CreateCamp(ctx, p)
		return err
	}); err != nil {
		return s, err
	}
	if err := apply("donors", f.Donors, func(p map[string]any) error {
		_, err := donors.RegisterDonor(ctx, p)
		return err
	}); err != nil {
		return s, err
	}
	if err := apply("trusts", f.Trusts, func(p map[string]any) error {
		_, err := trusts.RegisterTrust(ctx, p)
		return err
	}); err != nil {
		return s, err
	}
	return s, nil
}
