package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the inspector
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // optional; when set every /api/v1 request must carry it
}

// SummaryResponse is the overview of a savegame
type SummaryResponse struct {
	Difficulty      string   `json:"difficulty"`
	Water           uint32   `json:"water"`
	InventorySize   uint32   `json:"inventory_size"`
	LastItemID      uint32   `json:"last_item_id"`
	DLC             []string `json:"dlc"`
	Characters      int      `json:"characters"`
	UnlockedChars   []string `json:"unlocked_characters"`
	Missions        int      `json:"missions"`
	Levels          int      `json:"levels"`
	Hats            int      `json:"hats"`
	Items           int      `json:"items"`
	Pickups         int      `json:"pickups"`
	RemainingOffset int      `json:"remaining_offset"`
	RemainingBytes  int      `json:"remaining_bytes"`
}

// CharacterResponse describes one character.
//
// Names are raw bytes in the savegame. Any name that is not valid UTF-8 is
// rendered as "hex:" followed by its bytes in hex, here and in every other
// response. The same form is accepted by /characters/{name}.
type CharacterResponse struct {
	Name       string            `json:"name"`
	ID         *uint32           `json:"id,omitempty"`
	Unlocked   bool              `json:"unlocked"`
	XP         *uint32           `json:"xp,omitempty"`
	Attributes map[string]uint32 `json:"attributes"`
}

// ItemResponse describes a hat or bank item
type ItemResponse struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	New  bool   `json:"new,omitempty"`
}

// ChecksumResponse reports the stored and computed checksums
type ChecksumResponse struct {
	Stored   string `json:"stored"`
	Computed string `json:"computed"`
	Valid    bool   `json:"valid"`
}
