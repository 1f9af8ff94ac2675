package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog-api/entities"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    entities.Price
		wantErr bool
	}{
		{name: "two decimals", input: "18.00", want: 1800},
		{name: "one decimal", input: "18.5", want: 1850},
		{name: "no decimals", input: "7", want: 700},
		{name: "three decimals", input: "1.999", wantErr: true},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "signed fraction", input: "18.-5", wantErr: true},
		{name: "plus-signed fraction", input: "18.+5", wantErr: true},
		{name: "negative fraction only", input: "1.-1", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "exceeds numeric(5,2)", input: "1000.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entities.ParsePrice(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_RoundTrip(t *testing.T) {
	p, err := entities.ParsePrice("18.00")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"18.00"`, string(data))

	var back entities.Price
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)

	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "18.00", value)

	var scanned entities.Price
	require.NoError(t, scanned.Scan([]byte("18.00")))
	assert.Equal(t, p, scanned)
}

func TestPrice_UnmarshalAcceptsBareNumber(t *testing.T) {
	var p entities.Price
	require.NoError(t, json.Unmarshal([]byte(`12.75`), &p))
	assert.Equal(t, "12.75", p.String())

	assert.Error(t, json.Unmarshal([]byte(`12.755`), &p))
}
