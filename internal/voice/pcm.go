package voice

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice/live"
)

// Audio formats on the two sides of the bridge. The widget captures
// mono float32 at 16 kHz; the model replies with mono PCM16 at 24 kHz.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000

	micMimeType = "audio/pcm;rate=16000"
)

// DecodeWidgetFrame parses a base64 frame of little-endian float32
// samples as captured by the widget's audio worklet.
func DecodeWidgetFrame(data string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode widget frame: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("widget frame length %d is not a multiple of 4", len(raw))
	}
	samples := make([]float32, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}

// MicBlob converts float32 samples to the PCM16 blob the Live API
// expects for microphone input.
func MicBlob(samples []float32) live.Blob {
	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := s * 32768
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(v)))
	}
	return live.Blob{
		MimeType: micMimeType,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}
}

// DecodeModelFrame parses a base64 PCM16 frame from the model into
// float32 samples.
func DecodeModelFrame(data string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode model frame: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("model frame length %d is not a multiple of 2", len(raw))
	}
	samples := make([]float32, len(raw)/2)
	for i := range samples {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(raw[i*2:]))) / 32768.0
	}
	return samples, nil
}

// FrameDuration returns the playback time in seconds for a mono frame.
func FrameDuration(sampleCount, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(sampleCount) / float64(sampleRate)
}
