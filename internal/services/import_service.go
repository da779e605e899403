package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrMissingColumns = errors.New("csv is missing required columns")

// Draft sheet column headers. The rank column is missing from some
// exports, so it is optional.
const (
	columnPlayerName = "PLAYER NAME"
	columnPosition   = "POS"
	columnNFLTeam    = "TEAM"
	columnRank       = "RK"
	columnRankLong   = "RANK"
)

// RawPlayerRecord is one unparsed row of a draft sheet.
type RawPlayerRecord struct {
	Name        string
	RawPosition string
	NFLTeam     string
	Rank        *int
}

// ImportReport summarizes one catalog import run.
type ImportReport struct {
	Total            int
	Inserted         int
	SkippedDuplicate int
	SkippedPosition  int
}

// ImportService loads draft sheets into the player catalog.
type ImportService struct {
	playerRepo repository.PlayerRepository
	logger     *zap.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(playerRepo repository.PlayerRepository, logger *zap.Logger) *ImportService {
	return &ImportService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// NormalizePosition reduces a raw draft-sheet position label to its bare
// position code: non-letters are stripped and the rest is uppercased, so
// "WR1" becomes WR and "qb" becomes QB.
func NormalizePosition(raw string) models.Position {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return models.Position(b.String())
}

// ImportRecords inserts new catalog players. Rows with positions outside
// QB/RB/WR/TE are discarded. A row matching an existing (name, position)
// pair is skipped whole: re-running a sheet is a no-op and the stored
// rank is not refreshed from the file.
func (s *ImportService) ImportRecords(records []RawPlayerRecord) (ImportReport, error) {
	var report ImportReport

	for _, rec := range records {
		report.Total++

		pos := NormalizePosition(rec.RawPosition)
		if !pos.Valid() {
			report.SkippedPosition++
			continue
		}

		name := strings.TrimSpace(rec.Name)

		_, err := s.playerRepo.FindByNameAndPosition(name, pos)
		if err == nil {
			report.SkippedDuplicate++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return report, fmt.Errorf("failed to check for existing player: %w", err)
		}

		player := &models.Player{
			Name:     name,
			Position: pos,
			NFLTeam:  strings.TrimSpace(rec.NFLTeam),
			Rank:     rec.Rank,
		}
		if err := s.playerRepo.Create(player); err != nil {
			return report, fmt.Errorf("failed to create player %q: %w", name, err)
		}
		report.Inserted++
	}

	s.logger.Info("catalog import finished",
		zap.Int("total", report.Total),
		zap.Int("inserted", report.Inserted),
		zap.Int("skipped_duplicate", report.SkippedDuplicate),
		zap.Int("skipped_position", report.SkippedPosition),
	)

	return report, nil
}

// ImportCSV parses a draft sheet and imports its rows. The header row
// maps columns by name, so column order does not matter; ragged rows are
// tolerated.
func (s *ImportService) ImportCSV(r io.Reader) (ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return ImportReport{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, cell := range header {
		columns[strings.ToUpper(strings.TrimSpace(cell))] = i
	}

	nameIdx, nameOK := columns[columnPlayerName]
	posIdx, posOK := columns[columnPosition]
	teamIdx, teamOK := columns[columnNFLTeam]
	if !nameOK || !posOK || !teamOK {
		return ImportReport{}, fmt.Errorf("%w: need %s, %s and %s",
			ErrMissingColumns, columnPlayerName, columnPosition, columnNFLTeam)
	}

	rankIdx, rankOK := columns[columnRank]
	if !rankOK {
		rankIdx, rankOK = columns[columnRankLong]
	}

	var records []RawPlayerRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportReport{}, fmt.Errorf("failed to read csv row: %w", err)
		}

		rec := RawPlayerRecord{
			Name:        cellAt(row, nameIdx),
			RawPosition: cellAt(row, posIdx),
			NFLTeam:     cellAt(row, teamIdx),
		}
		if rankOK {
			if rank, err := strconv.Atoi(strings.TrimSpace(cellAt(row, rankIdx))); err == nil {
				rec.Rank = &rank
			}
		}

		records = append(records, rec)
	}

	return s.ImportRecords(records)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
