package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.csv")
	data := "chinese,jyutping,english,icon,category\n" +
		"貓,MAAU1,Cat,🐱,animals\n" +
		"狗,gau2,Dog,🐶,animals\n" +
		"貓,maau1,Cat,🐱,animals\n" +
		",hai6,Yes,,\n" +
		"紅色,hung4 sik1,Red,🔴\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	result, err := Import(DefaultImportConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 1)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "animals", result.Categories[0].Key)
	assert.Equal(t, "maau1", result.Categories[0].Items[0].Jyutping)
	assert.Equal(t, DefaultImportCategory, result.Categories[1].Key)

	out, err := Marshal(result.Categories)
	require.NoError(t, err)
	c, err := Parse(out)
	require.NoError(t, err)
	assert.Len(t, c.All(), 3)
}

func TestImportSpreadsheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.xlsx")
	f := excelize.NewFile()
	rows := [][]string{
		{"chinese", "jyutping", "english", "icon", "category"},
		{"蘋果", "ping4 gwo2", "Apple", "🍎", "foods"},
		{"香蕉", "hoeng1 ziu1", "Banana", "🍌", "foods"},
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result, err := Import(DefaultImportConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "foods", result.Categories[0].Key)
	assert.Equal(t, "香蕉", result.Categories[0].Items[1].Chinese)
}

func TestImportMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Import(DefaultImportConfig(filepath.Join(t.TempDir(), "missing.csv")))
	require.Error(t, err)
}
