package game

// Config mirrors the YAML / request schema for one simulation batch.
// Palette takes either the structured Colors list or the compact ratio
// string ("red:100, blue:50"); when both are set, Colors wins.
type Config struct {
	Palette      string       `yaml:"palette,omitempty" json:"palette,omitempty"`
	Colors       []ColorRatio `yaml:"colors,omitempty" json:"colors,omitempty"`
	WishColors   []string     `yaml:"wish_colors,omitempty" json:"wish_colors,omitempty"`
	InitialDraw  int          `yaml:"initial_draw" json:"initial_draw"`
	ExchangeRate int          `yaml:"exchange_rate" json:"exchange_rate"`
	TotalGames   int          `yaml:"total_games" json:"total_games"`
	MaxRounds    int          `yaml:"max_rounds" json:"max_rounds"`
	MilkSchedule []int        `yaml:"milk_schedule,omitempty" json:"milk_schedule,omitempty"`
	Seed         uint64       `yaml:"seed,omitempty" json:"seed,omitempty"`
	Workers      int          `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// ColorRatio is one palette entry in the structured form.
type ColorRatio struct {
	Color string  `yaml:"color" json:"color"`
	Ratio float64 `yaml:"ratio" json:"ratio"`
}

// Defaults observed in the original game setup.
var (
	DefaultColors       = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink", "black", "white"}
	DefaultInitialDraw  = 9
	DefaultExchangeRate = 18
	DefaultTotalGames   = 100
	DefaultMaxRounds    = 100
	DefaultMilkSchedule = []int{0, 0, 0}
)

// ApplyDefaults fills unset numeric fields and the milk schedule.
func (c *Config) ApplyDefaults() {
	if c.InitialDraw == 0 {
		c.InitialDraw = DefaultInitialDraw
	}
	if c.ExchangeRate == 0 {
		c.ExchangeRate = DefaultExchangeRate
	}
	if c.TotalGames == 0 {
		c.TotalGames = DefaultTotalGames
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	if c.MilkSchedule == nil {
		c.MilkSchedule = append([]int(nil), DefaultMilkSchedule...)
	}
}
