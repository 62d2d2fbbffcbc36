package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringList_Scan_KeepsAbsentAndEmptyApart(t *testing.T) {

	var absent StringList
	assert.NoError(t, absent.Scan(nil))
	assert.Nil(t, absent)

	var empty StringList
	assert.NoError(t, empty.Scan("[]"))
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	var filled StringList
	assert.NoError(t, filled.Scan([]byte(`["CA","TX"]`)))
	assert.Equal(t, StringList{"CA", "TX"}, filled)
}

func Test_StringList_Scan_MalformedPayloadTreatedAsAbsent(t *testing.T) {

	var l StringList
	assert.NoError(t, l.Scan("not json"))
	assert.Nil(t, l)

	assert.NoError(t, l.Scan("   "))
	assert.Nil(t, l)

	assert.Error(t, l.Scan(42))
}

func Test_StringList_Value(t *testing.T) {

	var absent StringList
	v, err := absent.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = StringList{"CA"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["CA"]`, v)

	v, err = StringList{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func Test_ConditionMap_ScanAndValue(t *testing.T) {

	var m ConditionMap
	assert.NoError(t, m.Scan(`{"min_experience": 3, "state_required": true}`))
	assert.Equal(t, float64(3), m["min_experience"])
	assert.Equal(t, true, m["state_required"])

	assert.NoError(t, m.Scan("garbage"))
	assert.Nil(t, m)

	var absent ConditionMap
	v, err := absent.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func Test_GenerateID_UsesPrefixAndFixedLength(t *testing.T) {

	id := GenerateID("CND")
	assert.Len(t, id, 15)
	assert.Equal(t, "CND", id[:3])
	assert.Equal(t, strings.ToUpper(id), id)
	assert.NotEqual(t, id, GenerateID("CND"))
}
