package synthetic

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"
	"vitalsign-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedGenerator(seed uint64) *Generator {
	g := NewGenerator(seed)
	g.now = func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate(t *testing.T) {
	records := newFixedGenerator(42).Generate(500)
	require.Len(t, records, 500)

	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	genders := map[string]int{}
	for _, record := range records {
		genders[record.Gender]++
		assert.NotEmpty(t, record.Family)
		assert.NotEmpty(t, record.Given)

		age := utils.CalculateAge(record.BirthDate, now)
		require.NotNil(t, age, record.BirthDate)
		assert.GreaterOrEqual(t, *age, 18)
		assert.LessOrEqual(t, *age, 90)

		switch record.Gender {
		case "male":
			assert.True(t, record.HeightCm >= 150 && record.HeightCm <= 200, record.HeightCm)
			assert.True(t, record.WeightKg >= 50 && record.WeightKg <= 120, record.WeightKg)
		case "female":
			assert.True(t, record.HeightCm >= 140 && record.HeightCm <= 185, record.HeightCm)
			assert.True(t, record.WeightKg >= 40 && record.WeightKg <= 100, record.WeightKg)
		default:
			t.Fatalf("unexpected gender %q", record.Gender)
		}
		assert.InDelta(t, record.HeightCm, float64(int(record.HeightCm*10+0.5))/10, 1e-9)
	}
	assert.Greater(t, genders["male"], 0)
	assert.Greater(t, genders["female"], 0)
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, newFixedGenerator(7).Generate(20), newFixedGenerator(7).Generate(20))
	assert.Empty(t, newFixedGenerator(7).Generate(0))
}

func TestRecordRequest(t *testing.T) {
	record := Record{Family: "陳", Given: "美玲", Gender: "female", BirthDate: "1990-05-01", HeightCm: 160, WeightKg: 55.5}

	request := record.Request()

	assert.Equal(t, "160.0", request.Height.String())
	assert.Equal(t, "cm", request.HeightUnit)
	assert.Equal(t, "55.5", request.Weight.String())
	assert.Equal(t, "kg", request.WeightUnit)
	assert.Equal(t, "陳", request.Family)
	assert.NoError(t, utils.ValidateStruct(request))
}

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{Family: "林", Given: "志明", Gender: "male", BirthDate: "1980-01-02", HeightCm: 172.3, WeightKg: 70},
	}
	var buffer bytes.Buffer

	require.NoError(t, WriteCSV(&buffer, records))

	rows, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Last Name", "First Name", "Gender", "Date of Birth", "Height (cm)", "Weight (kg)"}, rows[0])
	assert.Equal(t, []string{"林", "志明", "male", "1980-01-02", "172.3", "70.0"}, rows[1])
}
