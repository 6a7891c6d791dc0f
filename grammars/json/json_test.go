package json_test

import (
	stdjson "encoding/json"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/alecthomas/parsec/grammars/json"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		input    string
		expected *json.Value
	}{
		{`  ""  `, json.StringValue("")},
		{`  123  `, json.IntValue(123)},
		{`+123`, json.IntValue(123)},
		{`  3.14  `, json.FloatValue(3.14)},
		{`-3.14e-1`, json.FloatValue(-0.314)},
		{`1e3`, json.FloatValue(1000)},
		{`  true  `, json.BoolValue(true)},
		{`  false  `, json.BoolValue(false)},
		{`null`, json.NullValue()},
		{`  "hello!"  `, json.StringValue("hello!")},
		{` [] `, json.ArrayValue()},
		{` [ ] `, json.ArrayValue()},
		{` {} `, json.ObjectValue()},
		{` { } `, json.ObjectValue()},
		{` [ { } ] `, json.ArrayValue(json.ObjectValue())},
	}
	for _, test := range tests {
		actual, err := json.Parse(test.input)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expected, actual, test.input)
	}
}

func TestEscapes(t *testing.T) {
	actual, err := json.Parse(`"\ttest\u1234\ntest \"q\" \/ \\ \ud83d\ude00 \ud83d"`)
	require.NoError(t, err)
	require.Equal(t, json.StringValue("\ttest\u1234\ntest \"q\" / \\ \U0001F600 \uFFFD"), actual)
}

func TestDocument(t *testing.T) {
	actual, err := json.Parse(`
		{
			"escaped": "\ttest\u1234\ntest",
			"null": null,
			"a": +123,
			"b": -3.14e-1,
			"c": "hello",
			"d": {
				"x": 100,
				"y": "world!"
			},
			"e": [
				12,
				34.56,
				{
					"name": "Xiao Ming",
					"age": 18,
					"score": [99.8, 87.5, 60.0]
				},
				"abc"
			],
			"f": [],
			"g": {},
			"h": [true, {"m": false}]
		}
	`)
	require.NoError(t, err)
	expected := json.ObjectValue(
		json.Member{"escaped", json.StringValue("\ttest\u1234\ntest")},
		json.Member{"null", json.NullValue()},
		json.Member{"a", json.IntValue(123)},
		json.Member{"b", json.FloatValue(-0.314)},
		json.Member{"c", json.StringValue("hello")},
		json.Member{"d", json.ObjectValue(
			json.Member{"x", json.IntValue(100)},
			json.Member{"y", json.StringValue("world!")},
		)},
		json.Member{"e", json.ArrayValue(
			json.IntValue(12),
			json.FloatValue(34.56),
			json.ObjectValue(
				json.Member{"name", json.StringValue("Xiao Ming")},
				json.Member{"age", json.IntValue(18)},
				json.Member{"score", json.ArrayValue(json.FloatValue(99.8), json.FloatValue(87.5), json.FloatValue(60))},
			),
			json.StringValue("abc"),
		)},
		json.Member{"f", json.ArrayValue()},
		json.Member{"g", json.ObjectValue()},
		json.Member{"h", json.ArrayValue(json.BoolValue(true), json.ObjectValue(json.Member{"m", json.BoolValue(false)}))},
	)
	require.Equal(t, expected, actual)
	require.Equal(t, json.IntValue(100), actual.Get("d").Get("x"))
	require.Zero(t, actual.Get("missing"))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{`{`, `1:2: unexpected <EOF> (expected string or "}")`},
		{`{}}`, `1:3: unexpected trailing input "}"`},
		{`[{]}`, `1:3: unexpected "]}" (expected string or "}")`},
		{`[1 2 3]`, `1:4: unexpected "2 3]" (expected "," or "]")`},
		{`[1,2,3],4`, `1:8: unexpected trailing input ",4"`},
		{`[1,]`, `1:4: unexpected "]" (expected value)`},
		{`{"a" 1}`, `1:6: unexpected "1}" (expected ":")`},
		{`{"a": }`, `1:7: unexpected "}" (expected value)`},
		{`""`[:1], `1:1: no match (near "\"")`},
		{``, `1:1: no match at end of input`},
		{`99999999999999999999`, `1:1: invalid integer 99999999999999999999: strconv.ParseInt: parsing "99999999999999999999": value out of range`},
	}
	for _, test := range tests {
		_, err := json.Parse(test.input)
		require.EqualError(t, err, test.err, test.input)
	}
}

func TestMarshalPreservesOrder(t *testing.T) {
	v, err := json.Parse(`{"z": 1, "a": [true, null, "s"], "m": {"y": 2.5, "b": {}}}`)
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":[true,null,"s"],"m":{"y":2.5,"b":{}}}`, v.String())

	data, err := stdjson.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, v.String(), string(data))

	require.Equal[interface{}](t, map[string]interface{}{
		"z": int64(1),
		"a": []interface{}{true, nil, "s"},
		"m": map[string]interface{}{"y": 2.5, "b": map[string]interface{}{}},
	}, v.Interface())
}
