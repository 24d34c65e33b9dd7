package api

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/swhkit/swhedit/pkg/checksum"
	"github.com/swhkit/swhedit/pkg/codec"
	"github.com/swhkit/swhedit/pkg/savegame"
)

// Source supplies the bytes of the savegame being inspected
type Source interface {
	ReadSave() ([]byte, error)
}

// FileSource reads the savegame from a path on every request
type FileSource string

func (f FileSource) ReadSave() ([]byte, error) {
	return os.ReadFile(string(f))
}

// Server holds the inspector state. Nothing is cached: every request reads
// and decodes the file again, so the view follows the game as it saves.
type Server struct {
	source  Source
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new inspector
func NewServer(source Source, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		source:  source,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// load reads and decodes the savegame, writing an error response on failure
func (s *Server) load(w http.ResponseWriter) (*savegame.Savegame, bool) {
	data, err := s.source.ReadSave()
	if err != nil {
		s.logger.Error("failed to read savegame", "error", err)
		sendError(w, "Failed to read savegame", http.StatusInternalServerError)
		return nil, false
	}

	start := time.Now()
	sg, err := savegame.Decode(data)
	if s.metrics != nil {
		s.metrics.RecordDecode(err == nil, len(data), time.Since(start))
		if ok, verr := checksum.Verify(data); verr == nil {
			s.metrics.RecordChecksum(ok)
		}
	}
	if err != nil {
		s.logger.Warn("failed to decode savegame", "error", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, codec.ErrRoundtrip) {
			// The file decoded but could not be reproduced
			status = http.StatusInternalServerError
		}
		sendError(w, err.Error(), status)
		return nil, false
	}
	return sg, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck()
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sg, ok := s.load(w)
	if !ok {
		return
	}

	sendSuccess(w, SummaryResponse{
		Difficulty:      sg.Difficulty,
		Water:           sg.Water,
		InventorySize:   sg.InventorySize,
		LastItemID:      sg.LastItemID,
		DLC:             displayNames(sg.DLC),
		Characters:      sg.Characters.Len(),
		UnlockedChars:   displayNames(sg.UnlockedChars),
		Missions:        sg.Missions.Len(),
		Levels:          sg.Levels.Len(),
		Hats:            sg.Hats.Len(),
		Items:           sg.Items.Len(),
		Pickups:         sg.Pickups.Len(),
		RemainingOffset: sg.RemainingOffset,
		RemainingBytes:  len(sg.Remaining),
	})
}

// handleCharacters lists characters; ?unlocked=true limits the list to the
// crew
func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	sg, ok := s.load(w)
	if !ok {
		return
	}

	onlyUnlocked := r.URL.Query().Get("unlocked") == "true"
	chars := make([]CharacterResponse, 0, sg.Characters.Len())
	for _, c := range sg.Characters.Values() {
		view := characterResponse(sg, c)
		if onlyUnlocked && !view.Unlocked {
			continue
		}
		chars = append(chars, view)
	}
	sendSuccess(w, chars)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sg, ok := s.load(w)
	if !ok {
		return
	}

	c, found := sg.Character(lookupName(name))
	if !found {
		sendError(w, fmt.Sprintf("Character %q not found", name), http.StatusNotFound)
		return
	}
	sendSuccess(w, characterResponse(sg, c))
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	sg, ok := s.load(w)
	if !ok {
		return
	}

	items := make([]ItemResponse, 0, sg.Items.Len())
	for _, item := range sg.Items.Values() {
		items = append(items, ItemResponse{
			ID:   item.ID,
			Name: displayName(item.Name),
			New:  slices.Contains(sg.NewItems, item.ID),
		})
	}
	sendSuccess(w, items)
}

func (s *Server) handleHats(w http.ResponseWriter, r *http.Request) {
	sg, ok := s.load(w)
	if !ok {
		return
	}

	hats := make([]ItemResponse, 0, sg.Hats.Len())
	for _, hat := range sg.Hats.Values() {
		hats = append(hats, ItemResponse{ID: hat.ID, Name: displayName(hat.Name)})
	}
	sendSuccess(w, hats)
}

// handleChecksum works on the raw bytes, so it answers even for files that
// do not decode
func (s *Server) handleChecksum(w http.ResponseWriter, r *http.Request) {
	data, err := s.source.ReadSave()
	if err != nil {
		s.logger.Error("failed to read savegame", "error", err)
		sendError(w, "Failed to read savegame", http.StatusInternalServerError)
		return
	}

	stored, err := checksum.Stored(data)
	if err != nil {
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	computed, _ := checksum.Compute(data)
	if s.metrics != nil {
		s.metrics.RecordChecksum(stored == computed)
	}

	sendSuccess(w, ChecksumResponse{
		Stored:   fmt.Sprintf("0x%08x", stored),
		Computed: fmt.Sprintf("0x%08x", computed),
		Valid:    stored == computed,
	})
}

func characterResponse(sg *savegame.Savegame, c *savegame.Character) CharacterResponse {
	view := CharacterResponse{
		Name:       displayName(c.Name),
		ID:         c.ID,
		Unlocked:   slices.Contains(sg.UnlockedChars, c.Name),
		Attributes: make(map[string]uint32, c.Attributes.Len()),
	}
	if xp, ok := c.XP(); ok {
		view.XP = &xp
	}
	c.Attributes.Each(func(name string, value uint32) bool {
		view.Attributes[displayName(name)] = value
		return true
	})
	return view
}

// hexPrefix marks a name that is not valid UTF-8. JSON would replace the
// bad bytes with U+FFFD, so such names are sent as hex instead.
const hexPrefix = "hex:"

func displayName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	return hexPrefix + hex.EncodeToString([]byte(name))
}

func displayNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = displayName(name)
	}
	return out
}

// lookupName turns a name from a URL back into savegame bytes
func lookupName(name string) string {
	if rest, ok := strings.CutPrefix(name, hexPrefix); ok {
		if raw, err := hex.DecodeString(rest); err == nil && !utf8.Valid(raw) {
			return string(raw)
		}
	}
	return name
}
