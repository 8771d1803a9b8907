package order_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
)

func TestFields_Float(t *testing.T) {
	f := order.Fields{
		"int":    3,
		"float":  2.5,
		"number": json.Number("4.25"),
		"nan":    math.NaN(),
		"text":   "abc",
		"null":   nil,
	}

	v, err := f.Float("int")
	require.NoError(t, err)
	assert.Equal(t, 3.0, *v)

	v, err = f.Float("number")
	require.NoError(t, err)
	assert.Equal(t, 4.25, *v)

	v, err = f.Float("null")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = f.Float("nan")
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err))
	_, err = f.Float("text")
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err))
}

func TestFields_Int(t *testing.T) {
	f := order.Fields{"whole": 7.0, "half": 3.5, "number": json.Number("9")}

	v, err := f.Int("whole")
	require.NoError(t, err)
	assert.Equal(t, 7, *v)

	v, err = f.Int("number")
	require.NoError(t, err)
	assert.Equal(t, 9, *v)

	_, err = f.Int("half")
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err))

	for _, huge := range []float64{1e20, -1e20, math.Inf(1)} {
		_, err = order.Fields{"quantity": huge}.Int("quantity")
		assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err), "%v", huge)
	}

	v, err = f.Int("missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFields_FromJSON(t *testing.T) {
	raw := `{"orderNumber":"1","orderItems":[{"name":"Pizza","unitPrice":2,"quantity":7}],"pickup":{"street":"Hacker way"}}`

	var f order.Fields
	require.NoError(t, json.NewDecoder(strings.NewReader(raw)).Decode(&f))

	items, err := f.List("orderItems")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0]["name"])

	obj, err := f.Object("pickup")
	require.NoError(t, err)
	assert.Equal(t, "Hacker way", obj["street"])

	_, err = f.Object("orderNumber")
	assert.Equal(t, errs.KindTypeMismatch, errs.KindOf(err))
}
