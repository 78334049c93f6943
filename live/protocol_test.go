package live_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/live"
)

func TestFrame(t *testing.T) {
	b := live.EncodeFrame(live.CanvasTheta, []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, []byte{2, 0x89, 'P', 'N', 'G'}, b)

	id, img, err := live.DecodeFrame(b)
	require.NoError(t, err)
	assert.Equal(t, live.CanvasTheta, id)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img)

	_, _, err = live.DecodeFrame(nil)
	assert.ErrorIs(t, err, live.ErrShortFrame)
}

func TestMessageWireFormat(t *testing.T) {
	b, err := json.Marshal(live.Message{Type: live.TypeWheel, Target: live.TargetAlpha, X: 10, Y: 20, DeltaY: -3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"wheel","target":"alpha","x":10,"y":20,"deltaY":-3}`, string(b))

	var m live.Message
	require.NoError(t, json.Unmarshal([]byte(`{"type":"params","params":{"alpha":{"re":0.5,"im":0.5},"n":3},"t":1700000000000}`), &m))
	require.NotNil(t, m.Params)
	assert.Equal(t, revolving.Params{Alpha: revolving.C(0.5, 0.5), N: 3}, *m.Params)
	assert.Equal(t, int64(1700000000000), m.T)
}
