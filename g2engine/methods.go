package g2engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
)

// AddRecord adds a record to the repository.
func (e *Engine) AddRecord(ctx context.Context, dataSourceCode string, recordID string, jsonData string, loadID string) (err error) {
	defer e.base.Trace("AddRecord", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID))(&err)
	return e.base.Status(ctx, abi.G2AddRecord, dataSourceCode, recordID, jsonData, loadID)
}

// AddRecordWithInfo adds a record and returns the affected entities.
func (e *Engine) AddRecordWithInfo(ctx context.Context, dataSourceCode string, recordID string, jsonData string, loadID string, flags int64) (_ string, err error) {
	defer e.base.Trace("AddRecordWithInfo", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2AddRecordWithInfo, dataSourceCode, recordID, jsonData, loadID, flags)
}

// CheckRecord compares a record against the records of recordQueryList.
func (e *Engine) CheckRecord(ctx context.Context, record string, recordQueryList string) (_ string, err error) {
	defer e.base.Trace("CheckRecord", zap.String("recordQueryList", recordQueryList))(&err)
	return e.base.String(ctx, abi.G2CheckRecord, record, recordQueryList)
}

// DeleteRecord removes a record from the repository.
func (e *Engine) DeleteRecord(ctx context.Context, dataSourceCode string, recordID string, loadID string) (err error) {
	defer e.base.Trace("DeleteRecord", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID))(&err)
	return e.base.Status(ctx, abi.G2DeleteRecord, dataSourceCode, recordID, loadID)
}

// DeleteRecordWithInfo removes a record and returns the affected entities.
func (e *Engine) DeleteRecordWithInfo(ctx context.Context, dataSourceCode string, recordID string, loadID string, flags int64) (_ string, err error) {
	defer e.base.Trace("DeleteRecordWithInfo", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2DeleteRecordWithInfo, dataSourceCode, recordID, loadID, flags)
}

// Destroy shuts the engine down. The engine must be initialized again before further use.
func (e *Engine) Destroy(ctx context.Context) (err error) {
	defer e.base.Trace("Destroy")(&err)
	return e.base.Status(ctx, abi.G2Destroy)
}

// ExportConfig returns the configuration the engine is running with.
func (e *Engine) ExportConfig(ctx context.Context) (_ string, err error) {
	defer e.base.Trace("ExportConfig")(&err)
	return e.base.String(ctx, abi.G2ExportConfig)
}

// FindInterestingEntitiesByEntityID returns entities of interest related to entityID.
func (e *Engine) FindInterestingEntitiesByEntityID(ctx context.Context, entityID int64, flags int64) (_ string, err error) {
	defer e.base.Trace("FindInterestingEntitiesByEntityID", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindInterestingEntitiesByEntityID, entityID, flags)
}

// FindInterestingEntitiesByRecordID returns entities of interest related to the entity holding a record.
func (e *Engine) FindInterestingEntitiesByRecordID(ctx context.Context, dataSourceCode string, recordID string, flags int64) (_ string, err error) {
	defer e.base.Trace("FindInterestingEntitiesByRecordID", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindInterestingEntitiesByRecordID, dataSourceCode, recordID, flags)
}

// FindNetworkByEntityID returns the network of entities around the entities in entityList.
func (e *Engine) FindNetworkByEntityID(ctx context.Context, entityList string, maxDegree int, buildOutDegree int, maxEntities int) (_ string, err error) {
	defer e.base.Trace("FindNetworkByEntityID", zap.String("entityList", entityList), zap.Int("maxDegree", maxDegree), zap.Int("buildOutDegree", buildOutDegree), zap.Int("maxEntities", maxEntities))(&err)
	return e.base.String(ctx, abi.G2FindNetworkByEntityID, entityList, int32(maxDegree), int32(buildOutDegree), int32(maxEntities))
}

// FindNetworkByEntityIDV2 is FindNetworkByEntityID with explicit flags.
func (e *Engine) FindNetworkByEntityIDV2(ctx context.Context, entityList string, maxDegree int, buildOutDegree int, maxEntities int, flags int64) (_ string, err error) {
	defer e.base.Trace("FindNetworkByEntityIDV2", zap.String("entityList", entityList), zap.Int("maxDegree", maxDegree), zap.Int("buildOutDegree", buildOutDegree), zap.Int("maxEntities", maxEntities), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindNetworkByEntityIDV2, entityList, int32(maxDegree), int32(buildOutDegree), int32(maxEntities), flags)
}

// FindNetworkByRecordID returns the network of entities around the records in recordList.
func (e *Engine) FindNetworkByRecordID(ctx context.Context, recordList string, maxDegree int, buildOutDegree int, maxEntities int) (_ string, err error) {
	defer e.base.Trace("FindNetworkByRecordID", zap.String("recordList", recordList), zap.Int("maxDegree", maxDegree), zap.Int("buildOutDegree", buildOutDegree), zap.Int("maxEntities", maxEntities))(&err)
	return e.base.String(ctx, abi.G2FindNetworkByRecordID, recordList, int32(maxDegree), int32(buildOutDegree), int32(maxEntities))
}

// FindNetworkByRecordIDV2 is FindNetworkByRecordID with explicit flags.
func (e *Engine) FindNetworkByRecordIDV2(ctx context.Context, recordList string, maxDegree int, buildOutDegree int, maxEntities int, flags int64) (_ string, err error) {
	defer e.base.Trace("FindNetworkByRecordIDV2", zap.String("recordList", recordList), zap.Int("maxDegree", maxDegree), zap.Int("buildOutDegree", buildOutDegree), zap.Int("maxEntities", maxEntities), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindNetworkByRecordIDV2, recordList, int32(maxDegree), int32(buildOutDegree), int32(maxEntities), flags)
}

// FindPathByEntityID returns the shortest relationship path between two entities.
func (e *Engine) FindPathByEntityID(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int) (_ string, err error) {
	defer e.base.Trace("FindPathByEntityID", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree))(&err)
	return e.base.String(ctx, abi.G2FindPathByEntityID, entityID1, entityID2, int32(maxDegree))
}

// FindPathByEntityIDV2 is FindPathByEntityID with explicit flags.
func (e *Engine) FindPathByEntityIDV2(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathByEntityIDV2", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathByEntityIDV2, entityID1, entityID2, int32(maxDegree), flags)
}

// FindPathByRecordID returns the shortest relationship path between the entities of two records.
func (e *Engine) FindPathByRecordID(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int) (_ string, err error) {
	defer e.base.Trace("FindPathByRecordID", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree))(&err)
	return e.base.String(ctx, abi.G2FindPathByRecordID, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree))
}

// FindPathByRecordIDV2 is FindPathByRecordID with explicit flags.
func (e *Engine) FindPathByRecordIDV2(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathByRecordIDV2", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathByRecordIDV2, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree), flags)
}

// FindPathExcludingByEntityID is FindPathByEntityID avoiding excludedEntities.
func (e *Engine) FindPathExcludingByEntityID(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int, excludedEntities string) (_ string, err error) {
	defer e.base.Trace("FindPathExcludingByEntityID", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree), zap.String("excludedEntities", excludedEntities))(&err)
	return e.base.String(ctx, abi.G2FindPathExcludingByEntityID, entityID1, entityID2, int32(maxDegree), excludedEntities)
}

// FindPathExcludingByEntityIDV2 is FindPathExcludingByEntityID with explicit flags.
func (e *Engine) FindPathExcludingByEntityIDV2(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int, excludedEntities string, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathExcludingByEntityIDV2", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree), zap.String("excludedEntities", excludedEntities), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathExcludingByEntityIDV2, entityID1, entityID2, int32(maxDegree), excludedEntities, flags)
}

// FindPathExcludingByRecordID is FindPathByRecordID avoiding the entities of excludedRecords.
func (e *Engine) FindPathExcludingByRecordID(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int, excludedRecords string) (_ string, err error) {
	defer e.base.Trace("FindPathExcludingByRecordID", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree), zap.String("excludedRecords", excludedRecords))(&err)
	return e.base.String(ctx, abi.G2FindPathExcludingByRecordID, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree), excludedRecords)
}

// FindPathExcludingByRecordIDV2 is FindPathExcludingByRecordID with explicit flags.
func (e *Engine) FindPathExcludingByRecordIDV2(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int, excludedRecords string, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathExcludingByRecordIDV2", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree), zap.String("excludedRecords", excludedRecords), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathExcludingByRecordIDV2, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree), excludedRecords, flags)
}

// FindPathIncludingSourceByEntityID is FindPathExcludingByEntityID restricted to paths through requiredDsrcs.
func (e *Engine) FindPathIncludingSourceByEntityID(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int, excludedEntities string, requiredDsrcs string) (_ string, err error) {
	defer e.base.Trace("FindPathIncludingSourceByEntityID", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree), zap.String("excludedEntities", excludedEntities), zap.String("requiredDsrcs", requiredDsrcs))(&err)
	return e.base.String(ctx, abi.G2FindPathIncludingSourceByEntityID, entityID1, entityID2, int32(maxDegree), excludedEntities, requiredDsrcs)
}

// FindPathIncludingSourceByEntityIDV2 is FindPathIncludingSourceByEntityID with explicit flags.
func (e *Engine) FindPathIncludingSourceByEntityIDV2(ctx context.Context, entityID1 int64, entityID2 int64, maxDegree int, excludedEntities string, requiredDsrcs string, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathIncludingSourceByEntityIDV2", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int("maxDegree", maxDegree), zap.String("excludedEntities", excludedEntities), zap.String("requiredDsrcs", requiredDsrcs), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathIncludingSourceByEntityIDV2, entityID1, entityID2, int32(maxDegree), excludedEntities, requiredDsrcs, flags)
}

// FindPathIncludingSourceByRecordID is FindPathExcludingByRecordID restricted to paths through requiredDsrcs.
func (e *Engine) FindPathIncludingSourceByRecordID(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int, excludedRecords string, requiredDsrcs string) (_ string, err error) {
	defer e.base.Trace("FindPathIncludingSourceByRecordID", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree), zap.String("excludedRecords", excludedRecords), zap.String("requiredDsrcs", requiredDsrcs))(&err)
	return e.base.String(ctx, abi.G2FindPathIncludingSourceByRecordID, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree), excludedRecords, requiredDsrcs)
}

// FindPathIncludingSourceByRecordIDV2 is FindPathIncludingSourceByRecordID with explicit flags.
func (e *Engine) FindPathIncludingSourceByRecordIDV2(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, maxDegree int, excludedRecords string, requiredDsrcs string, flags int64) (_ string, err error) {
	defer e.base.Trace("FindPathIncludingSourceByRecordIDV2", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int("maxDegree", maxDegree), zap.String("excludedRecords", excludedRecords), zap.String("requiredDsrcs", requiredDsrcs), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2FindPathIncludingSourceByRecordIDV2, dataSourceCode1, recordID1, dataSourceCode2, recordID2, int32(maxDegree), excludedRecords, requiredDsrcs, flags)
}

// GetEntityByEntityID returns the resolved entity entityID.
func (e *Engine) GetEntityByEntityID(ctx context.Context, entityID int64) (_ string, err error) {
	defer e.base.Trace("GetEntityByEntityID", zap.Int64("entityID", entityID))(&err)
	return e.base.String(ctx, abi.G2GetEntityByEntityID, entityID)
}

// GetEntityByEntityIDV2 is GetEntityByEntityID with explicit flags.
func (e *Engine) GetEntityByEntityIDV2(ctx context.Context, entityID int64, flags int64) (_ string, err error) {
	defer e.base.Trace("GetEntityByEntityIDV2", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2GetEntityByEntityIDV2, entityID, flags)
}

// GetEntityByRecordID returns the entity a record resolved into.
func (e *Engine) GetEntityByRecordID(ctx context.Context, dataSourceCode string, recordID string) (_ string, err error) {
	defer e.base.Trace("GetEntityByRecordID", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID))(&err)
	return e.base.String(ctx, abi.G2GetEntityByRecordID, dataSourceCode, recordID)
}

// GetEntityByRecordIDV2 is GetEntityByRecordID with explicit flags.
func (e *Engine) GetEntityByRecordIDV2(ctx context.Context, dataSourceCode string, recordID string, flags int64) (_ string, err error) {
	defer e.base.Trace("GetEntityByRecordIDV2", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2GetEntityByRecordIDV2, dataSourceCode, recordID, flags)
}

// GetRecord returns a record as loaded.
func (e *Engine) GetRecord(ctx context.Context, dataSourceCode string, recordID string) (_ string, err error) {
	defer e.base.Trace("GetRecord", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID))(&err)
	return e.base.String(ctx, abi.G2GetRecord, dataSourceCode, recordID)
}

// GetRecordV2 is GetRecord with explicit flags.
func (e *Engine) GetRecordV2(ctx context.Context, dataSourceCode string, recordID string, flags int64) (_ string, err error) {
	defer e.base.Trace("GetRecordV2", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2GetRecordV2, dataSourceCode, recordID, flags)
}

// GetVirtualEntityByRecordID returns the entity the records in recordList would resolve into.
func (e *Engine) GetVirtualEntityByRecordID(ctx context.Context, recordList string) (_ string, err error) {
	defer e.base.Trace("GetVirtualEntityByRecordID", zap.String("recordList", recordList))(&err)
	return e.base.String(ctx, abi.G2GetVirtualEntityByRecordID, recordList)
}

// GetVirtualEntityByRecordIDV2 is GetVirtualEntityByRecordID with explicit flags.
func (e *Engine) GetVirtualEntityByRecordIDV2(ctx context.Context, recordList string, flags int64) (_ string, err error) {
	defer e.base.Trace("GetVirtualEntityByRecordIDV2", zap.String("recordList", recordList), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2GetVirtualEntityByRecordIDV2, recordList, flags)
}

// HowEntityByEntityID explains the resolution steps that built an entity.
func (e *Engine) HowEntityByEntityID(ctx context.Context, entityID int64) (_ string, err error) {
	defer e.base.Trace("HowEntityByEntityID", zap.Int64("entityID", entityID))(&err)
	return e.base.String(ctx, abi.G2HowEntityByEntityID, entityID)
}

// HowEntityByEntityIDV2 is HowEntityByEntityID with explicit flags.
func (e *Engine) HowEntityByEntityIDV2(ctx context.Context, entityID int64, flags int64) (_ string, err error) {
	defer e.base.Trace("HowEntityByEntityIDV2", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2HowEntityByEntityIDV2, entityID, flags)
}

// Init initializes the engine with the settings in iniParams.
func (e *Engine) Init(ctx context.Context, moduleName string, iniParams string, verboseLogging int) (err error) {
	defer e.base.Trace("Init", zap.String("moduleName", moduleName), zap.Int("verboseLogging", verboseLogging))(&err)
	return e.base.Status(ctx, abi.G2Init, moduleName, iniParams, int32(verboseLogging))
}

// InitWithConfigID initializes the engine with a specific configuration.
func (e *Engine) InitWithConfigID(ctx context.Context, moduleName string, iniParams string, initConfigID int64, verboseLogging int) (err error) {
	defer e.base.Trace("InitWithConfigID", zap.String("moduleName", moduleName), zap.Int64("initConfigID", initConfigID), zap.Int("verboseLogging", verboseLogging))(&err)
	return e.base.Status(ctx, abi.G2InitWithConfigID, moduleName, iniParams, initConfigID, int32(verboseLogging))
}

// PrimeEngine preloads engine caches.
func (e *Engine) PrimeEngine(ctx context.Context) (err error) {
	defer e.base.Trace("PrimeEngine")(&err)
	return e.base.Status(ctx, abi.G2PrimeEngine)
}

// Process applies a record with an embedded action.
func (e *Engine) Process(ctx context.Context, record string) (err error) {
	defer e.base.Trace("Process")(&err)
	return e.base.Status(ctx, abi.G2Process, record)
}

// ProcessWithInfo is Process returning the affected entities.
func (e *Engine) ProcessWithInfo(ctx context.Context, record string, flags int64) (_ string, err error) {
	defer e.base.Trace("ProcessWithInfo", zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2ProcessWithInfo, record, flags)
}

// ProcessWithResponseResize is Process returning the engine response in a growable buffer.
func (e *Engine) ProcessWithResponseResize(ctx context.Context, record string) (_ string, err error) {
	defer e.base.Trace("ProcessWithResponseResize")(&err)
	return e.base.String(ctx, abi.G2ProcessWithResponseResize, record)
}

// PurgeRepository deletes every record and entity. Intended for tests.
func (e *Engine) PurgeRepository(ctx context.Context) (err error) {
	defer e.base.Trace("PurgeRepository")(&err)
	return e.base.Status(ctx, abi.G2PurgeRepository)
}

// ReevaluateEntity re-resolves an entity.
func (e *Engine) ReevaluateEntity(ctx context.Context, entityID int64, flags int64) (err error) {
	defer e.base.Trace("ReevaluateEntity", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.Status(ctx, abi.G2ReevaluateEntity, entityID, flags)
}

// ReevaluateEntityWithInfo re-resolves an entity and returns the affected entities.
func (e *Engine) ReevaluateEntityWithInfo(ctx context.Context, entityID int64, flags int64) (_ string, err error) {
	defer e.base.Trace("ReevaluateEntityWithInfo", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2ReevaluateEntityWithInfo, entityID, flags)
}

// ReevaluateRecord re-resolves the entity holding a record.
func (e *Engine) ReevaluateRecord(ctx context.Context, dataSourceCode string, recordID string, flags int64) (err error) {
	defer e.base.Trace("ReevaluateRecord", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.Status(ctx, abi.G2ReevaluateRecord, dataSourceCode, recordID, flags)
}

// ReevaluateRecordWithInfo re-resolves the entity holding a record and returns the affected entities.
func (e *Engine) ReevaluateRecordWithInfo(ctx context.Context, dataSourceCode string, recordID string, flags int64) (_ string, err error) {
	defer e.base.Trace("ReevaluateRecordWithInfo", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2ReevaluateRecordWithInfo, dataSourceCode, recordID, flags)
}

// Reinit switches the running engine to another configuration.
func (e *Engine) Reinit(ctx context.Context, initConfigID int64) (err error) {
	defer e.base.Trace("Reinit", zap.Int64("initConfigID", initConfigID))(&err)
	return e.base.Status(ctx, abi.G2Reinit, initConfigID)
}

// ReplaceRecord replaces a record.
func (e *Engine) ReplaceRecord(ctx context.Context, dataSourceCode string, recordID string, jsonData string, loadID string) (err error) {
	defer e.base.Trace("ReplaceRecord", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID))(&err)
	return e.base.Status(ctx, abi.G2ReplaceRecord, dataSourceCode, recordID, jsonData, loadID)
}

// ReplaceRecordWithInfo replaces a record and returns the affected entities.
func (e *Engine) ReplaceRecordWithInfo(ctx context.Context, dataSourceCode string, recordID string, jsonData string, loadID string, flags int64) (_ string, err error) {
	defer e.base.Trace("ReplaceRecordWithInfo", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.String("loadID", loadID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2ReplaceRecordWithInfo, dataSourceCode, recordID, jsonData, loadID, flags)
}

// SearchByAttributes returns entities matching the attributes in jsonData.
func (e *Engine) SearchByAttributes(ctx context.Context, jsonData string) (_ string, err error) {
	defer e.base.Trace("SearchByAttributes")(&err)
	return e.base.String(ctx, abi.G2SearchByAttributes, jsonData)
}

// SearchByAttributesV2 is SearchByAttributes with explicit flags.
func (e *Engine) SearchByAttributesV2(ctx context.Context, jsonData string, flags int64) (_ string, err error) {
	defer e.base.Trace("SearchByAttributesV2", zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2SearchByAttributesV2, jsonData, flags)
}

// Stats returns workload statistics for the current process.
func (e *Engine) Stats(ctx context.Context) (_ string, err error) {
	defer e.base.Trace("Stats")(&err)
	return e.base.String(ctx, abi.G2Stats)
}

// WhyEntities explains why two entities did or did not resolve together.
func (e *Engine) WhyEntities(ctx context.Context, entityID1 int64, entityID2 int64) (_ string, err error) {
	defer e.base.Trace("WhyEntities", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2))(&err)
	return e.base.String(ctx, abi.G2WhyEntities, entityID1, entityID2)
}

// WhyEntitiesV2 is WhyEntities with explicit flags.
func (e *Engine) WhyEntitiesV2(ctx context.Context, entityID1 int64, entityID2 int64, flags int64) (_ string, err error) {
	defer e.base.Trace("WhyEntitiesV2", zap.Int64("entityID1", entityID1), zap.Int64("entityID2", entityID2), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2WhyEntitiesV2, entityID1, entityID2, flags)
}

// WhyEntityByEntityID explains why the records of an entity resolved together.
func (e *Engine) WhyEntityByEntityID(ctx context.Context, entityID int64) (_ string, err error) {
	defer e.base.Trace("WhyEntityByEntityID", zap.Int64("entityID", entityID))(&err)
	return e.base.String(ctx, abi.G2WhyEntityByEntityID, entityID)
}

// WhyEntityByEntityIDV2 is WhyEntityByEntityID with explicit flags.
func (e *Engine) WhyEntityByEntityIDV2(ctx context.Context, entityID int64, flags int64) (_ string, err error) {
	defer e.base.Trace("WhyEntityByEntityIDV2", zap.Int64("entityID", entityID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2WhyEntityByEntityIDV2, entityID, flags)
}

// WhyEntityByRecordID explains why a record resolved into its entity.
func (e *Engine) WhyEntityByRecordID(ctx context.Context, dataSourceCode string, recordID string) (_ string, err error) {
	defer e.base.Trace("WhyEntityByRecordID", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID))(&err)
	return e.base.String(ctx, abi.G2WhyEntityByRecordID, dataSourceCode, recordID)
}

// WhyEntityByRecordIDV2 is WhyEntityByRecordID with explicit flags.
func (e *Engine) WhyEntityByRecordIDV2(ctx context.Context, dataSourceCode string, recordID string, flags int64) (_ string, err error) {
	defer e.base.Trace("WhyEntityByRecordIDV2", zap.String("dataSourceCode", dataSourceCode), zap.String("recordID", recordID), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2WhyEntityByRecordIDV2, dataSourceCode, recordID, flags)
}

// WhyRecords explains why two records did or did not resolve together.
func (e *Engine) WhyRecords(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string) (_ string, err error) {
	defer e.base.Trace("WhyRecords", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2))(&err)
	return e.base.String(ctx, abi.G2WhyRecords, dataSourceCode1, recordID1, dataSourceCode2, recordID2)
}

// WhyRecordsV2 is WhyRecords with explicit flags.
func (e *Engine) WhyRecordsV2(ctx context.Context, dataSourceCode1 string, recordID1 string, dataSourceCode2 string, recordID2 string, flags int64) (_ string, err error) {
	defer e.base.Trace("WhyRecordsV2", zap.String("dataSourceCode1", dataSourceCode1), zap.String("recordID1", recordID1), zap.String("dataSourceCode2", dataSourceCode2), zap.String("recordID2", recordID2), zap.Int64("flags", flags))(&err)
	return e.base.String(ctx, abi.G2WhyRecordsV2, dataSourceCode1, recordID1, dataSourceCode2, recordID2, flags)
}
