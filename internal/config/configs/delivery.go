package configs

// Delivery configures the delivery engine.
type Delivery struct {
	// RandSeed seeds the admission, shuffle and rotation random source.
	// Zero means seed from the clock; fixed values make runs reproducible.
	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`

	// BucketTimezone qualifies day buckets for the daily counter families,
	// e.g. "UTC" or "America/New_York".
	BucketTimezone string `env:"BUCKET_TZ" envDefault:"UTC"`
}
