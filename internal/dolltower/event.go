package dolltower

// Phase labels a pipeline stage in the event log.
type Phase string

const (
	PhaseInit      Phase = "init"
	PhaseWish      Phase = "wish"
	PhaseGroup     Phase = "group"
	PhaseDuplicate Phase = "duplicate"
	PhaseBonus     Phase = "bonus"
	PhaseRefill    Phase = "refill"
	PhaseMilk      Phase = "milk"
	PhaseEnd       Phase = "end"
)

// Event is one immutable audit record. The engine only appends events and
// never reads them back; they exist for external reporting.
type Event struct {
	GameID         int    `json:"game_id"`
	Round          int    `json:"round"`
	Phase          Phase  `json:"phase"`
	Tower          string `json:"tower"`
	BasketSize     int    `json:"basket_size"`
	HarvestedDolls int    `json:"harvested_dolls"`
	HarvestedGifts int    `json:"harvested_gifts"`
	Occupancy      int    `json:"occupancy"`
	Description    string `json:"description"`
}
