package services

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/examforge/exam-portal/internal/models"
)

// Workbook column layout for question bank imports:
// question | option_a | option_b | option_c | option_d | correct_answer | difficulty | subject
const importColumns = 8

// parseQuestionWorkbook reads the first sheet of an .xlsx workbook and
// returns the valid questions. Invalid rows are skipped, not fatal.
func parseQuestionWorkbook(r io.Reader, logger *slog.Logger) ([]*models.Question, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, 0, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var questions []*models.Question
	skipped := 0

	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}

		question, err := parseQuestionRow(row)
		if err != nil {
			logger.Warn("skipping invalid question row", "row", i+1, "error", err)
			skipped++
			continue
		}
		questions = append(questions, question)
	}

	return questions, skipped, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "question")
}

func parseQuestionRow(row []string) (*models.Question, error) {
	if len(row) < importColumns-2 {
		return nil, fmt.Errorf("expected at least %d columns, got %d", importColumns-2, len(row))
	}

	// Pad optional trailing columns (difficulty, subject).
	cells := make([]string, importColumns)
	for i := range cells {
		if i < len(row) {
			cells[i] = strings.TrimSpace(row[i])
		}
	}

	correct, err := strconv.Atoi(cells[5])
	if err != nil {
		return nil, fmt.Errorf("invalid correct_answer %q", cells[5])
	}

	return models.NewQuestion(
		cells[0],
		[]string{cells[1], cells[2], cells[3], cells[4]},
		correct,
		models.DifficultyLevel(cells[6]),
		cells[7],
	)
}
