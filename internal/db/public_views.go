package db

import "context"

// PublicViewCount is an aggregated public render counter by outcome.
type PublicViewCount struct {
	Outcome string
	Count   int64
}

// IncrementPublicView increments the render counter for an outcome
// ("rendered", "not_found").
func (d *DB) IncrementPublicView(ctx context.Context, outcome string) error {
	query := `
		INSERT INTO public_views (outcome, count)
		VALUES ($1, 1)
		ON CONFLICT (outcome) DO UPDATE SET count = public_views.count + 1
	`
	_, err := d.Pool.Exec(ctx, query, outcome)
	return err
}

// GetPublicViewCounts returns all public render counters.
func (d *DB) GetPublicViewCounts(ctx context.Context) ([]PublicViewCount, error) {
	rows, err := d.Pool.Query(ctx, `SELECT outcome, count FROM public_views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []PublicViewCount
	for rows.Next() {
		var c PublicViewCount
		if err := rows.Scan(&c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
