//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ldr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

func writefixture(t *testing.T, dir string, name string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func fixturecfg(t *testing.T) (*str.CurrentConfiguration, string) {
	t.Helper()
	dir := t.TempDir()

	writefixture(t, dir, "metadata.csv",
		"id,title,author,year,file\n"+
			"lotr,The Lord of the Rings,J. R. R. Tolkien,1954,lotr.txt\n"+
			"hobbit,The Hobbit,J. R. R. Tolkien,1937,hobbit.txt\n")
	writefixture(t, dir, "hobbit.txt",
		"In a hole in the ground there lived a hobbit. The dragon Smaug guarded gold beneath the mountain. "+
			strings.Repeat("dragon gold mountain hobbit dwarf ring riddle dark ", 4))
	writefixture(t, dir, "lotr.txt",
		"The ring must go to the fire. The dark rider hunted the hobbit across the shire. "+
			strings.Repeat("ring shadow dark hobbit wizard fire mountain road ", 4))

	return &str.CurrentConfiguration{
		CorpusDir:    dir,
		MetadataFile: filepath.Join(dir, "metadata.csv"),
		MinTermCount: 1,
	}, dir
}

func TestLoadCorpus(t *testing.T) {
	cfg, _ := fixturecfg(t)

	c, err := LoadCorpus(cfg, getenglishstops())
	require.NoError(t, err)
	require.Len(t, c.Docs, 2)

	// loaded docs are ordered by year regardless of csv order
	assert.Equal(t, "hobbit", c.Docs[0].ID)
	assert.Equal(t, "lotr", c.Docs[1].ID)
	assert.Equal(t, 1937, c.Docs[0].Year)

	// stopwords are gone, content words remain
	assert.NotContains(t, c.Docs[0].Tokens, "the")
	assert.Contains(t, c.Docs[0].Tokens, "dragon")

	assert.Positive(t, c.Vocabulary["ring"])
	assert.Equal(t, len(c.Docs[0].Tokens)+len(c.Docs[1].Tokens), c.TokenTotal)
}

func TestLoadCorpusDeterministic(t *testing.T) {
	cfg, _ := fixturecfg(t)
	stops := getenglishstops()

	c1, err := LoadCorpus(cfg, stops)
	require.NoError(t, err)
	c2, err := LoadCorpus(cfg, stops)
	require.NoError(t, err)

	assert.Equal(t, c1.Docs[0].Tokens, c2.Docs[0].Tokens)
	assert.Equal(t, c1.Vocabulary, c2.Vocabulary)
}

func TestVocabularyCutoff(t *testing.T) {
	cfg, _ := fixturecfg(t)
	cfg.MinTermCount = 5

	c, err := LoadCorpus(cfg, getenglishstops())
	require.NoError(t, err)

	// "dragon" appears 5 times in hobbit.txt only
	assert.Contains(t, c.Vocabulary, "dragon")
	// "lived" appears once
	assert.NotContains(t, c.Vocabulary, "lived")
}

func TestLoadErrors(t *testing.T) {
	stops := getenglishstops()

	t.Run("missing metadata", func(t *testing.T) {
		cfg, _ := fixturecfg(t)
		cfg.MetadataFile = filepath.Join(t.TempDir(), "nope.csv")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
	})

	t.Run("bad header", func(t *testing.T) {
		cfg, dir := fixturecfg(t)
		writefixture(t, dir, "metadata.csv", "id,name,year\nx,y,1\n")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, le.Reason, "header")
	})

	t.Run("unparseable year", func(t *testing.T) {
		cfg, dir := fixturecfg(t)
		writefixture(t, dir, "metadata.csv",
			"id,title,author,year,file\nhobbit,The Hobbit,Tolkien,MCMXXXVII,hobbit.txt\n")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, le.Reason, "year")
	})

	t.Run("missing text file", func(t *testing.T) {
		cfg, dir := fixturecfg(t)
		writefixture(t, dir, "metadata.csv",
			"id,title,author,year,file\nghost,Ghost,Nobody,1990,ghost.txt\n")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
	})

	t.Run("empty after normalization", func(t *testing.T) {
		cfg, dir := fixturecfg(t)
		writefixture(t, dir, "metadata.csv",
			"id,title,author,year,file\nblank,Blank,Nobody,1990,blank.txt\n")
		writefixture(t, dir, "blank.txt", "12345 67890 !!! ???")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, le.Reason, "tokens")
	})

	t.Run("duplicate id", func(t *testing.T) {
		cfg, dir := fixturecfg(t)
		writefixture(t, dir, "metadata.csv",
			"id,title,author,year,file\nhobbit,A,X,1937,hobbit.txt\nhobbit,B,Y,1954,lotr.txt\n")
		_, err := LoadCorpus(cfg, stops)
		var le *str.LoadError
		require.ErrorAs(t, err, &le)
		assert.Contains(t, le.Reason, "duplicate")
	})
}

func TestEntityEnrichment(t *testing.T) {
	cfg, dir := fixturecfg(t)
	ents := filepath.Join(dir, "ents")
	require.NoError(t, os.Mkdir(ents, 0755))
	writefixture(t, ents, "hobbit.json",
		`[{"text": "Smaug", "label": "CHARACTER"}, {"text": "Lonely Mountain", "label": "LOCATION"}]`)
	cfg.EntityDir = ents

	c, err := LoadCorpus(cfg, getenglishstops())
	require.NoError(t, err)

	hobbit := c.DocByID("hobbit")
	require.NotNil(t, hobbit)
	assert.Contains(t, hobbit.Tokens, "smaug_character")
	assert.Contains(t, hobbit.Tokens, "lonely_mountain_location")

	// no annotation file for lotr is fine
	lotr := c.DocByID("lotr")
	require.NotNil(t, lotr)
	assert.NotContains(t, lotr.Tokens, "smaug_character")
}

func TestEntityEnrichmentMalformed(t *testing.T) {
	cfg, dir := fixturecfg(t)
	ents := filepath.Join(dir, "ents")
	require.NoError(t, os.Mkdir(ents, 0755))
	writefixture(t, ents, "hobbit.json", `{"not": "a list"`)
	cfg.EntityDir = ents

	_, err := LoadCorpus(cfg, getenglishstops())
	var le *str.LoadError
	require.ErrorAs(t, err, &le)
}

func TestNormalizeAndTokenize(t *testing.T) {
	stops := getenglishstops()

	tokens := NormalizeAndTokenize("The dragon’s hoard—vast and GOLDEN—lay under the Mountain!", stops)
	assert.Equal(t, []string{"dragon's", "hoard", "vast", "golden", "lay", "mountain"}, tokens)

	// single letters and bare apostrophes vanish
	tokens = NormalizeAndTokenize("I a '' x yz", stops)
	assert.Equal(t, []string{"yz"}, tokens)
}
