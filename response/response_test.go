package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/g2-bridge/errors"
)

func TestDecodeEntity(t *testing.T) {
	doc := `{"RESOLVED_ENTITY":{"ENTITY_ID":1,"ENTITY_NAME":"Robert Smith",` +
		`"RECORDS":[{"DATA_SOURCE":"CUSTOMERS","RECORD_ID":"1001","MATCH_KEY":"","ERRULE_CODE":""},` +
		`{"DATA_SOURCE":"CUSTOMERS","RECORD_ID":"1002","MATCH_KEY":"+NAME+DOB","MATCH_LEVEL":1,"ERRULE_CODE":"CNAME_CFF_CEXCL"}]},` +
		`"RELATED_ENTITIES":[{"ENTITY_ID":4,"ENTITY_NAME":"Bob Smith","MATCH_LEVEL":2,"MATCH_KEY":"+NAME","IS_DISCLOSED":0,"IS_AMBIGUOUS":0}],` +
		`"FEATURE_DETAILS":{}}`

	got, err := DecodeEntity(doc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Entity.ID)
	assert.Equal(t, "Robert Smith", got.Entity.Name)
	require.Len(t, got.Entity.Records, 2)
	assert.Equal(t, "1002", got.Entity.Records[1].RecordID)
	assert.Equal(t, "+NAME+DOB", got.Entity.Records[1].MatchKey)
	require.Len(t, got.Related, 1)
	assert.Equal(t, int64(4), got.Related[0].ID)
	assert.Equal(t, 2, got.Related[0].MatchLevel)
}

func TestDecodeInfo(t *testing.T) {
	got, err := DecodeInfo(`{"DATA_SOURCE":"TEST","RECORD_ID":"R1","AFFECTED_ENTITIES":[{"ENTITY_ID":5},{"ENTITY_ID":9}],"INTERESTING_ENTITIES":{"ENTITIES":[]}}`)
	require.NoError(t, err)
	assert.Equal(t, "R1", got.RecordID)
	assert.Equal(t, []AffectedEntity{{ID: 5}, {ID: 9}}, got.AffectedEntities)
}

func TestDecodeWhy(t *testing.T) {
	got, err := DecodeWhy(`{"WHY_RESULTS":[{"ENTITY_ID":1,"ENTITY_ID_2":4,"MATCH_INFO":{"WHY_KEY":"+NAME","WHY_ERRULE_CODE":"CNAME","MATCH_LEVEL_CODE":"POSSIBLY_RELATED"}}],` +
		`"ENTITIES":[{"RESOLVED_ENTITY":{"ENTITY_ID":1}},{"RESOLVED_ENTITY":{"ENTITY_ID":4}}]}`)
	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, int64(4), got.Results[0].EntityID2)
	assert.Equal(t, "POSSIBLY_RELATED", got.Results[0].MatchInfo.MatchLevelCode)
	require.Len(t, got.Entities, 2)
	assert.Equal(t, int64(4), got.Entities[1].Entity.ID)
}

func TestDecodeLists(t *testing.T) {
	configs, err := DecodeConfigList(`{"CONFIGS":[{"CONFIG_ID":4019066234,"CONFIG_COMMENTS":"initial","SYS_CREATE_DT":"2024-01-02 03:04:05.678"}]}`)
	require.NoError(t, err)
	assert.Equal(t, []ConfigEntry{{ID: 4019066234, Comments: "initial", Created: "2024-01-02 03:04:05.678"}}, configs.Configs)

	sources, err := DecodeDataSources(`{"DATA_SOURCES":[{"DSRC_ID":1,"DSRC_CODE":"TEST"},{"DSRC_ID":2,"DSRC_CODE":"SEARCH"}]}`)
	require.NoError(t, err)
	assert.Equal(t, []DataSource{{ID: 1, Code: "TEST"}, {ID: 2, Code: "SEARCH"}}, sources.DataSources)

	version, err := DecodeVersion(`{"PRODUCT_NAME":"Senzing API","VERSION":"3.10.1","BUILD_VERSION":"3.10.1.24150","BUILD_DATE":"2024-05-29","COMPATIBILITY_VERSION":{"CONFIG_VERSION":"10"}}`)
	require.NoError(t, err)
	assert.Equal(t, "3.10.1", version.Version)
	assert.Equal(t, "10", version.Compatibility.ConfigVersion)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"blank", " \n"},
		{"truncated", `{"RESOLVED_ENTITY":{"ENTITY_ID":1`},
		{"wrong type", `{"RESOLVED_ENTITY":{"ENTITY_ID":"one"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEntity(tt.doc)
			var be *errors.Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, errors.PhaseLift, be.Phase)
			assert.Equal(t, errors.KindInvalidData, be.Kind)
		})
	}
}
