package synthetic

import (
	"math"
	"math/rand/v2"
	"time"
	"vitalsign-service/internal/pkg/constvars"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/utils"
)

const (
	minAgeYears = 18
	maxAgeYears = 90
)

var (
	familyNames        = []string{"陳", "林", "黃", "張", "李", "王", "吳", "劉", "蔡", "楊", "許", "鄭", "謝", "郭", "洪"}
	maleGivenNames     = []string{"志明", "建宏", "俊傑", "家豪", "冠宇", "承翰", "宗翰", "彥廷", "柏翰", "宇軒"}
	femaleGivenNames   = []string{"淑芬", "美玲", "雅婷", "怡君", "佳穎", "詩涵", "欣怡", "宜蓁", "思妤", "雅雯"}
	maleDistribution   = bodyDistribution{height: clampedNormal{172, 7, 150, 200}, weight: clampedNormal{70, 10, 50, 120}}
	femaleDistribution = bodyDistribution{height: clampedNormal{160, 6, 140, 185}, weight: clampedNormal{58, 8, 40, 100}}
)

type clampedNormal struct {
	mean, stddev, min, max float64
}

type bodyDistribution struct {
	height clampedNormal
	weight clampedNormal
}

// Record is one synthetic patient with a metric height and weight.
type Record struct {
	Family    string
	Given     string
	Gender    string
	BirthDate string
	HeightCm  float64
	WeightKg  float64
}

// Request shapes the record like a form submission.
func (r Record) Request() *requests.VitalSigns {
	return &requests.VitalSigns{
		Given:      r.Given,
		Family:     r.Family,
		Gender:     r.Gender,
		BirthDate:  r.BirthDate,
		Height:     requests.NumericString(formatOneDecimal(r.HeightCm)),
		Weight:     requests.NumericString(formatOneDecimal(r.WeightKg)),
		HeightUnit: constvars.UnitCentimeter,
		WeightUnit: constvars.UnitKilogram,
	}
}

type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator whose output is fully determined by seed
// and the current date.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

func (g *Generator) Generate(n int) []Record {
	records := make([]Record, 0, max(n, 0))
	for i := 0; i < n; i++ {
		records = append(records, g.next())
	}
	return records
}

func (g *Generator) next() Record {
	gender, givenNames, distribution := "male", maleGivenNames, maleDistribution
	if g.rng.IntN(2) == 1 {
		gender, givenNames, distribution = "female", femaleGivenNames, femaleDistribution
	}

	return Record{
		Family:    familyNames[g.rng.IntN(len(familyNames))],
		Given:     givenNames[g.rng.IntN(len(givenNames))],
		Gender:    gender,
		BirthDate: g.birthDate(),
		HeightCm:  g.sample(distribution.height),
		WeightKg:  g.sample(distribution.weight),
	}
}

// birthDate is uniform over the days between maxAgeYears and minAgeYears ago.
func (g *Generator) birthDate() string {
	today := g.now().UTC().Truncate(24 * time.Hour)
	earliest := today.AddDate(-maxAgeYears, 0, 0)
	latest := today.AddDate(-minAgeYears, 0, 0)
	days := int64(latest.Sub(earliest).Hours() / 24)
	return utils.FormatFhirDate(earliest.AddDate(0, 0, int(g.rng.Int64N(days+1))))
}

func (g *Generator) sample(dist clampedNormal) float64 {
	value := dist.mean + g.rng.NormFloat64()*dist.stddev
	value = math.Max(dist.min, math.Min(dist.max, value))
	return math.Round(value*10) / 10
}
