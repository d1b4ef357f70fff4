package response

import (
	"encoding/json"
	"strings"

	"github.com/wippyai/g2-bridge/errors"
)

// Record is one record resolved into an entity.
type Record struct {
	DataSource string `json:"DATA_SOURCE"`
	RecordID   string `json:"RECORD_ID"`
	MatchKey   string `json:"MATCH_KEY,omitempty"`
	MatchLevel int    `json:"MATCH_LEVEL,omitempty"`
	ErruleCode string `json:"ERRULE_CODE,omitempty"`
}

// Entity is a resolved entity.
type Entity struct {
	ID      int64    `json:"ENTITY_ID"`
	Name    string   `json:"ENTITY_NAME,omitempty"`
	Records []Record `json:"RECORDS,omitempty"`
}

// RelatedEntity is an entity related to a resolved one.
type RelatedEntity struct {
	ID          int64  `json:"ENTITY_ID"`
	Name        string `json:"ENTITY_NAME,omitempty"`
	MatchLevel  int    `json:"MATCH_LEVEL"`
	MatchKey    string `json:"MATCH_KEY,omitempty"`
	IsDisclosed int    `json:"IS_DISCLOSED"`
	IsAmbiguous int    `json:"IS_AMBIGUOUS"`
}

// EntityResponse is the reply of the get-entity entry points.
type EntityResponse struct {
	Entity  Entity          `json:"RESOLVED_ENTITY"`
	Related []RelatedEntity `json:"RELATED_ENTITIES,omitempty"`
}

// AffectedEntity names an entity changed by a write.
type AffectedEntity struct {
	ID int64 `json:"ENTITY_ID"`
}

// Info is the "with info" document returned by writes.
type Info struct {
	DataSource       string           `json:"DATA_SOURCE"`
	RecordID         string           `json:"RECORD_ID"`
	AffectedEntities []AffectedEntity `json:"AFFECTED_ENTITIES"`
}

// MatchInfo explains how two entities or records relate.
type MatchInfo struct {
	WhyKey         string `json:"WHY_KEY"`
	WhyErruleCode  string `json:"WHY_ERRULE_CODE,omitempty"`
	MatchLevelCode string `json:"MATCH_LEVEL_CODE"`
}

// WhyResult is one explained pair.
type WhyResult struct {
	EntityID  int64     `json:"ENTITY_ID"`
	EntityID2 int64     `json:"ENTITY_ID_2,omitempty"`
	MatchInfo MatchInfo `json:"MATCH_INFO"`
}

// WhyResponse is the reply of the why entry points.
type WhyResponse struct {
	Results  []WhyResult      `json:"WHY_RESULTS"`
	Entities []EntityResponse `json:"ENTITIES,omitempty"`
}

// ConfigEntry describes one stored configuration.
type ConfigEntry struct {
	ID       int64  `json:"CONFIG_ID"`
	Comments string `json:"CONFIG_COMMENTS"`
	Created  string `json:"SYS_CREATE_DT"`
}

// ConfigList is the reply of G2ConfigMgr_getConfigList.
type ConfigList struct {
	Configs []ConfigEntry `json:"CONFIGS"`
}

// DataSource is one configured data source.
type DataSource struct {
	ID   int64  `json:"DSRC_ID"`
	Code string `json:"DSRC_CODE"`
}

// DataSources is the reply of G2Config_listDataSources.
type DataSources struct {
	DataSources []DataSource `json:"DATA_SOURCES"`
}

// Version is the reply of G2Product_version.
type Version struct {
	ProductName   string `json:"PRODUCT_NAME"`
	Version       string `json:"VERSION"`
	BuildVersion  string `json:"BUILD_VERSION"`
	BuildDate     string `json:"BUILD_DATE"`
	Compatibility struct {
		ConfigVersion string `json:"CONFIG_VERSION"`
	} `json:"COMPATIBILITY_VERSION"`
}

// Decode unmarshals doc into a new T. name labels errors. An empty or blank
// doc is an error.
func Decode[T any](name, doc string) (*T, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, errors.InvalidData(errors.PhaseLift, []string{name}, "empty response")
	}
	v := new(T)
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidData).
			Path(name).
			Detail("decode %s", name).
			Cause(err).
			Build()
	}
	return v, nil
}

// DecodeEntity decodes a get-entity reply.
func DecodeEntity(doc string) (*EntityResponse, error) {
	return Decode[EntityResponse]("entity", doc)
}

// DecodeInfo decodes a "with info" reply.
func DecodeInfo(doc string) (*Info, error) {
	return Decode[Info]("info", doc)
}

// DecodeWhy decodes a why reply.
func DecodeWhy(doc string) (*WhyResponse, error) {
	return Decode[WhyResponse]("why", doc)
}

// DecodeConfigList decodes a configuration list.
func DecodeConfigList(doc string) (*ConfigList, error) {
	return Decode[ConfigList]("config list", doc)
}

// DecodeDataSources decodes a data source list.
func DecodeDataSources(doc string) (*DataSources, error) {
	return Decode[DataSources]("data sources", doc)
}

// DecodeVersion decodes a product version reply.
func DecodeVersion(doc string) (*Version, error) {
	return Decode[Version]("version", doc)
}
