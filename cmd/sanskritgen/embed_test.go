package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

func TestLoadSeedData(t *testing.T) {
	t.Parallel()

	nouns, verbs, table, err := loadSeedData()
	require.NoError(t, err)

	assert.NotEmpty(t, nouns)
	assert.NotEmpty(t, verbs)
	assert.NotEmpty(t, table)
}

func TestSeedDataIsInternallyConsistent(t *testing.T) {
	t.Parallel()

	nouns, verbs, table, err := loadSeedData()
	require.NoError(t, err)

	t.Run("every noun validates", func(t *testing.T) {
		for _, n := range nouns {
			assert.NoError(t, n.Validate(), "noun %q", n.Root)
		}
	})

	t.Run("every verb validates", func(t *testing.T) {
		for _, v := range verbs {
			assert.NoError(t, v.Validate(), "verb %q", v.Root)
		}
	})

	t.Run("every verb class has present suffixes", func(t *testing.T) {
		present, ok := table[domain.TensePresent]
		require.True(t, ok)
		for _, v := range verbs {
			_, ok := present[v.Class]
			assert.True(t, ok, "verb %q class %q missing present suffixes", v.Root, v.Class)
		}
	})

	t.Run("suffix sets cover all nine person-number slots", func(t *testing.T) {
		for tense, classes := range table {
			for class, suffixes := range classes {
				assert.Len(t, suffixes, 9, "tense %q class %q", tense, class)
			}
		}
	})

	t.Run("at least one usable subject and object noun", func(t *testing.T) {
		var subjects, objects int
		for _, n := range nouns {
			if n.UsableAsSubject {
				subjects++
			}
			if n.UsableAsObject {
				objects++
			}
		}
		assert.Positive(t, subjects)
		assert.Positive(t, objects)
	})
}
