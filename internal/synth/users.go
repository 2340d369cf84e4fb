package synth

import (
	"math"
	"math/rand"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// Config parameterizes user synthesis.
type Config struct {
	// FakerSeed seeds identity generation (names, mails, provinces).
	FakerSeed uint64

	// DemographicSeed seeds the gender and age draws, independently of the
	// faker so either sequence can be re-seeded without moving the other.
	DemographicSeed int64

	// Locale selects the identity locale.
	Locale string

	// MaleProbability is the Bernoulli parameter of the gender draw.
	MaleProbability float64

	// AgeMean and AgeStdDev parameterize the normal age branch.
	AgeMean   float64
	AgeStdDev float64

	// AgeNormalFraction of the users draw their age from the normal
	// branch; the rest are uniform integers in [AgeMin, AgeMax].
	AgeNormalFraction float64
	AgeMin            int
	AgeMax            int
}

// DefaultConfig models the assumed customer base: mostly female, ages
// centered on 30.
func DefaultConfig() Config {
	return Config{
		FakerSeed:         123,
		DemographicSeed:   123,
		Locale:            "zh_CN",
		MaleProbability:   0.2,
		AgeMean:           30,
		AgeStdDev:         4,
		AgeNormalFraction: 0.8,
		AgeMin:            20,
		AgeMax:            60,
	}
}

// Enricher synthesizes one user profile per distinct fact user.
type Enricher struct {
	faker *Faker
	rng   *rand.Rand
	cfg   Config
}

// NewEnricher creates an enricher with freshly seeded generators.
func NewEnricher(cfg Config) *Enricher {
	return &Enricher{
		faker: NewFaker(cfg.FakerSeed, cfg.Locale),
		rng:   rand.New(rand.NewSource(cfg.DemographicSeed)),
		cfg:   cfg,
	}
}

// EnrichUsers synthesizes one profile per user id, in the given order.
// Callers pass the distinct fact user ids, so every fact user gains exactly
// one profile. The age branches are assigned positionally: the first
// floor(fraction*n) users get normal ages, the remainder uniform ones.
func (e *Enricher) EnrichUsers(userIDs []string) []warehouse.User {
	users := make([]warehouse.User, len(userIDs))
	for i, id := range userIDs {
		users[i] = warehouse.User{
			UserID:   id,
			UserName: e.faker.Username(),
			Name:     e.faker.Name(),
			Gender:   e.gender(),
			Mail:     e.faker.Email(),
			Province: e.faker.Province(),
		}
	}

	for i, age := range e.ages(len(userIDs)) {
		users[i].Age = age
	}
	return users
}

func (e *Enricher) gender() string {
	if e.rng.Float64() <= e.cfg.MaleProbability {
		return "M"
	}
	return "F"
}

// ages draws the two-block age mixture.
func (e *Enricher) ages(n int) []int {
	ages := make([]int, n)
	normCount := int(float64(n) * e.cfg.AgeNormalFraction)
	for i := 0; i < normCount; i++ {
		ages[i] = int(math.Round(e.rng.NormFloat64()*e.cfg.AgeStdDev + e.cfg.AgeMean))
	}
	for i := normCount; i < n; i++ {
		ages[i] = e.cfg.AgeMin + e.rng.Intn(e.cfg.AgeMax-e.cfg.AgeMin+1)
	}
	return ages
}
