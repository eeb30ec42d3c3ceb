package highscore

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

const entryDelimiter = "="

// decodeEntries parses "<score>=<name>" lines. Lines without the delimiter
// and lines whose score is not an integer are skipped. Lines of any length are read.
func decodeEntries(r io.Reader) ([]*models.HighScoreEntry, error) {
	var entries []*models.HighScoreEntry

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if entry, ok := decodeLine(strings.TrimSuffix(line, "\n")); ok {
				entries = append(entries, entry)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func decodeLine(line string) (*models.HighScoreEntry, bool) {
	rawScore, name, found := strings.Cut(strings.TrimRight(line, "\r"), entryDelimiter)
	if !found {
		return nil, false
	}

	score, err := strconv.Atoi(strings.TrimSpace(rawScore))
	if err != nil {
		return nil, false
	}

	return &models.HighScoreEntry{
		Score: score,
		Name:  name,
	}, true
}

// encodeEntries writes one "<score>=<name>" line per entry
func encodeEntries(w io.Writer, entries []*models.HighScoreEntry) error {
	bw := bufio.NewWriter(w)
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if _, err := bw.WriteString(encodeLine(entry)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeLine(entry *models.HighScoreEntry) string {
	// A newline in a name would split the entry across two lines
	name := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(entry.Name)
	return strconv.Itoa(entry.Score) + entryDelimiter + name + "\n"
}
