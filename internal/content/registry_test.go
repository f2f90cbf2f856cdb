package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func staticEntry(key Key, lang language.Tag, value string) Entry {
	return Static(key, lang, "test entry", value)
}

func TestBuild_MergesTables(t *testing.T) {
	reg, err := Build(
		Table{Name: "a", Entries: []Entry{
			staticEntry("a.one", language.English, "one"),
			staticEntry("a.one", language.German, "eins"),
		}},
		Table{Name: "b", Entries: []Entry{
			staticEntry("b.two", language.English, "two"),
		}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())

	e, ok := reg.Lookup("a.one", language.German)
	require.True(t, ok)
	assert.Equal(t, "eins", e.StaticValue())

	_, ok = reg.Lookup("b.two", language.German)
	assert.False(t, ok)
}

func TestBuild_CollisionFailsNamingBothTables(t *testing.T) {
	_, err := Build(
		Table{Name: "greetings", Entries: []Entry{
			staticEntry("greeting.welcome", language.English, "hello"),
		}},
		Table{Name: "alerts", Entries: []Entry{
			staticEntry("greeting.welcome", language.English, "hi"),
		}},
	)
	require.Error(t, err)

	var cerr *CollisionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, Key("greeting.welcome"), cerr.Key)
	assert.Equal(t, language.English, cerr.Lang)
	assert.Equal(t, [2]string{"greetings", "alerts"}, cerr.Tables)
	assert.Contains(t, err.Error(), `"greetings"`)
	assert.Contains(t, err.Error(), `"alerts"`)
}

func TestBuild_SameKeyDifferentLanguagesIsNotACollision(t *testing.T) {
	_, err := Build(
		Table{Name: "a", Entries: []Entry{staticEntry("k", language.English, "v")}},
		Table{Name: "b", Entries: []Entry{staticEntry("k", language.German, "w")}},
	)
	assert.NoError(t, err)
}

func TestBuild_ReportsEveryCollision(t *testing.T) {
	_, err := Build(
		Table{Name: "a", Entries: []Entry{
			staticEntry("k1", language.English, "v"),
			staticEntry("k2", language.English, "v"),
		}},
		Table{Name: "b", Entries: []Entry{
			staticEntry("k1", language.English, "w"),
			staticEntry("k2", language.English, "w"),
		}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k1")
	assert.Contains(t, err.Error(), "k2")
}

func TestBuild_RejectsMalformedEntries(t *testing.T) {
	_, err := Build(Table{Name: "broken", Entries: []Entry{{}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed entry")

	_, err = Build(Table{Name: "broken", Entries: []Entry{
		Template("", language.English, "no key", nil, nil),
	}})
	assert.Error(t, err)
}

func TestRegistry_KeysSortedAndUnique(t *testing.T) {
	reg, err := Build(Table{Name: "a", Entries: []Entry{
		staticEntry("z", language.English, "v"),
		staticEntry("a", language.English, "v"),
		staticEntry("a", language.German, "v"),
	}})
	require.NoError(t, err)
	assert.Equal(t, []Key{"a", "z"}, reg.Keys())
}
