package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lougreen/dicelab/dice"
	"github.com/lougreen/dicelab/game"
	"github.com/lougreen/dicelab/loader"
)

const validDefinition = `
dice:
  - name: fair
    faces: [1, 2, 3, 4, 5, 6]
  - name: loaded
    faces: [1, 2, 3, 4, 5, 6]
    weights:
      "6": 5.0
      "1": 0.0
game:
  dice: [fair, loaded]
  rolls: 50
`

func TestParse_ValidDefinition(t *testing.T) {
	def, err := loader.Parse([]byte(validDefinition))
	require.NoError(t, err)

	require.Len(t, def.Dice, 2)
	assert.Equal(t, "fair", def.Dice[0].Name)
	assert.Equal(t,
		[]loader.FaceValue{"1", "2", "3", "4", "5", "6"},
		def.Dice[0].Faces,
		"numeric faces must normalize to strings")
	assert.Equal(t, 5.0, def.Dice[1].Weights["6"])
	assert.Equal(t, []string{"fair", "loaded"}, def.Game.Dice)
	assert.Equal(t, 50, def.Game.Rolls)
}

func TestParse_MixedScalarFaces(t *testing.T) {
	def, err := loader.Parse([]byte(`
dice:
  - name: mixed
    faces: [A, 2, 3.5]
game:
  dice: [mixed]
  rolls: 1
`))
	require.NoError(t, err)
	assert.Equal(t, []loader.FaceValue{"A", "2", "3.5"}, def.Dice[0].Faces)
}

func TestParse_RejectsNonScalarFace(t *testing.T) {
	_, err := loader.Parse([]byte(`
dice:
  - name: bad
    faces: [[1, 2]]
game:
  dice: [bad]
  rolls: 1
`))
	assert.Error(t, err)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no dice",
			yaml:    "game:\n  dice: [a]\n  rolls: 1\n",
			wantErr: loader.ErrNoDiceDefined,
		},
		{
			name:    "unnamed die",
			yaml:    "dice:\n  - faces: [1]\ngame:\n  dice: [a]\n  rolls: 1\n",
			wantErr: loader.ErrUnnamedDie,
		},
		{
			name:    "duplicate die name",
			yaml:    "dice:\n  - name: a\n    faces: [1]\n  - name: a\n    faces: [1]\ngame:\n  dice: [a]\n  rolls: 1\n",
			wantErr: loader.ErrDuplicateDieName,
		},
		{
			name:    "no faces",
			yaml:    "dice:\n  - name: a\ngame:\n  dice: [a]\n  rolls: 1\n",
			wantErr: loader.ErrNoFacesDefined,
		},
		{
			name:    "no game dice",
			yaml:    "dice:\n  - name: a\n    faces: [1]\ngame:\n  rolls: 1\n",
			wantErr: loader.ErrNoGameDice,
		},
		{
			name:    "unknown die reference",
			yaml:    "dice:\n  - name: a\n    faces: [1]\ngame:\n  dice: [b]\n  rolls: 1\n",
			wantErr: loader.ErrUnknownDieName,
		},
		{
			name:    "zero rolls",
			yaml:    "dice:\n  - name: a\n    faces: [1]\ngame:\n  dice: [a]\n",
			wantErr: loader.ErrInvalidRolls,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuild_AppliesWeightOverrides(t *testing.T) {
	def, err := loader.Parse([]byte(validDefinition))
	require.NoError(t, err)

	exp, err := def.Build(&loader.BuildConfig{Source: dice.NewSeededSource(1)})
	require.NoError(t, err)

	loaded, ok := exp.Dice["loaded"]
	require.True(t, ok)

	snapshot := loaded.Show()
	w, ok := snapshot.Cell("6", "weight")
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	w, ok = snapshot.Cell("1", "weight")
	require.True(t, ok)
	assert.Equal(t, 0.0, w)

	fair, ok := exp.Dice["fair"]
	require.True(t, ok)
	for i := range fair.Faces() {
		assert.Equal(t, 1.0, fair.Show().At(i, 0))
	}
}

func TestBuild_UnknownWeightFace(t *testing.T) {
	def, err := loader.Parse([]byte(`
dice:
  - name: a
    faces: [1, 2]
    weights:
      "9": 2.0
game:
  dice: [a]
  rolls: 1
`))
	require.NoError(t, err)

	_, err = def.Build(nil)
	assert.ErrorIs(t, err, dice.ErrUnknownFace)
}

func TestBuild_AndRun(t *testing.T) {
	def, err := loader.Parse([]byte(validDefinition))
	require.NoError(t, err)

	exp, err := def.Build(&loader.BuildConfig{Source: dice.NewSeededSource(3)})
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	wide, err := exp.Game.Show(game.FormWide)
	require.NoError(t, err)
	assert.Equal(t, 50, wide.NumRows())
	assert.Equal(t, 2, wide.NumColumns())

	// The loaded die is column 1; face 1 has weight zero there.
	for _, row := range wide.Rows() {
		assert.NotEqual(t, "1", row[1], "zero-weight face must never be rolled")
	}
}

func TestBuild_RepeatedDieName(t *testing.T) {
	def, err := loader.Parse([]byte(`
dice:
  - name: coin
    faces: [H, T]
game:
  dice: [coin, coin, coin]
  rolls: 4
`))
	require.NoError(t, err)

	exp, err := def.Build(&loader.BuildConfig{Source: dice.NewSeededSource(9)})
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	wide, err := exp.Game.Show(game.FormWide)
	require.NoError(t, err)
	assert.Equal(t, 3, wide.NumColumns())
}
