package g2diagnostic

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
)

// CheckDBPerf measures repository insert throughput for secondsToRun seconds.
func (d *Diagnostic) CheckDBPerf(ctx context.Context, secondsToRun int) (_ string, err error) {
	defer d.base.Trace("CheckDBPerf", zap.Int("secondsToRun", secondsToRun))(&err)
	return d.base.String(ctx, abi.G2DiagnosticCheckDBPerf, int32(secondsToRun))
}

// Destroy shuts the diagnostic component down.
func (d *Diagnostic) Destroy(ctx context.Context) (err error) {
	defer d.base.Trace("Destroy")(&err)
	return d.base.Status(ctx, abi.G2DiagnosticDestroy)
}

// FindEntitiesByFeatureIDs returns entities sharing the features listed in features.
func (d *Diagnostic) FindEntitiesByFeatureIDs(ctx context.Context, features string) (_ string, err error) {
	defer d.base.Trace("FindEntitiesByFeatureIDs", zap.String("features", features))(&err)
	return d.base.String(ctx, abi.G2DiagnosticFindEntitiesByFeatureIDs, features)
}

// GetDataSourceCounts returns record and entity counts per data source.
func (d *Diagnostic) GetDataSourceCounts(ctx context.Context) (_ string, err error) {
	defer d.base.Trace("GetDataSourceCounts")(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetDataSourceCounts)
}

// GetDBInfo describes the repository database.
func (d *Diagnostic) GetDBInfo(ctx context.Context) (_ string, err error) {
	defer d.base.Trace("GetDBInfo")(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetDBInfo)
}

// GetEntityDetails returns the internal details of an entity.
func (d *Diagnostic) GetEntityDetails(ctx context.Context, entityID int64, includeInternalFeatures int) (_ string, err error) {
	defer d.base.Trace("GetEntityDetails", zap.Int64("entityID", entityID), zap.Int("includeInternalFeatures", includeInternalFeatures))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetEntityDetails, entityID, int32(includeInternalFeatures))
}

// GetEntityResume returns the records and relations of an entity.
func (d *Diagnostic) GetEntityResume(ctx context.Context, entityID int64) (_ string, err error) {
	defer d.base.Trace("GetEntityResume", zap.Int64("entityID", entityID))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetEntityResume, entityID)
}

// GetEntitySizeBreakdown returns the number of entities per size.
func (d *Diagnostic) GetEntitySizeBreakdown(ctx context.Context, minimumEntitySize uint64, includeInternalFeatures int) (_ string, err error) {
	defer d.base.Trace("GetEntitySizeBreakdown", zap.Uint64("minimumEntitySize", minimumEntitySize), zap.Int("includeInternalFeatures", includeInternalFeatures))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetEntitySizeBreakdown, minimumEntitySize, int32(includeInternalFeatures))
}

// GetFeature returns one library feature.
func (d *Diagnostic) GetFeature(ctx context.Context, libFeatID int64) (_ string, err error) {
	defer d.base.Trace("GetFeature", zap.Int64("libFeatID", libFeatID))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetFeature, libFeatID)
}

// GetGenericFeatures returns features of featureType that became generic.
func (d *Diagnostic) GetGenericFeatures(ctx context.Context, featureType string, maximumEstimatedCount uint64) (_ string, err error) {
	defer d.base.Trace("GetGenericFeatures", zap.String("featureType", featureType), zap.Uint64("maximumEstimatedCount", maximumEstimatedCount))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetGenericFeatures, featureType, maximumEstimatedCount)
}

// GetMappingStatistics returns feature mapping statistics.
func (d *Diagnostic) GetMappingStatistics(ctx context.Context, includeInternalFeatures int) (_ string, err error) {
	defer d.base.Trace("GetMappingStatistics", zap.Int("includeInternalFeatures", includeInternalFeatures))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetMappingStatistics, int32(includeInternalFeatures))
}

// GetRelationshipDetails returns the internal details of a relationship.
func (d *Diagnostic) GetRelationshipDetails(ctx context.Context, relationshipID int64, includeInternalFeatures int) (_ string, err error) {
	defer d.base.Trace("GetRelationshipDetails", zap.Int64("relationshipID", relationshipID), zap.Int("includeInternalFeatures", includeInternalFeatures))(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetRelationshipDetails, relationshipID, int32(includeInternalFeatures))
}

// GetResolutionStatistics returns resolution statistics.
func (d *Diagnostic) GetResolutionStatistics(ctx context.Context) (_ string, err error) {
	defer d.base.Trace("GetResolutionStatistics")(&err)
	return d.base.String(ctx, abi.G2DiagnosticGetResolutionStatistics)
}

// Init initializes the diagnostic component.
func (d *Diagnostic) Init(ctx context.Context, moduleName string, iniParams string, verboseLogging int) (err error) {
	defer d.base.Trace("Init", zap.String("moduleName", moduleName), zap.Int("verboseLogging", verboseLogging))(&err)
	return d.base.Status(ctx, abi.G2DiagnosticInit, moduleName, iniParams, int32(verboseLogging))
}

// InitWithConfigID initializes the diagnostic component with a specific configuration.
func (d *Diagnostic) InitWithConfigID(ctx context.Context, moduleName string, iniParams string, initConfigID int64, verboseLogging int) (err error) {
	defer d.base.Trace("InitWithConfigID", zap.String("moduleName", moduleName), zap.Int64("initConfigID", initConfigID), zap.Int("verboseLogging", verboseLogging))(&err)
	return d.base.Status(ctx, abi.G2DiagnosticInitWithConfigID, moduleName, iniParams, initConfigID, int32(verboseLogging))
}

// Reinit switches the diagnostic component to another configuration.
func (d *Diagnostic) Reinit(ctx context.Context, initConfigID int64) (err error) {
	defer d.base.Trace("Reinit", zap.Int64("initConfigID", initConfigID))(&err)
	return d.base.Status(ctx, abi.G2DiagnosticReinit, initConfigID)
}
