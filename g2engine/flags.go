package g2engine

// Engine flags. Bit positions follow the engine header.
const (
	ExportIncludeMultiRecordEntities  int64 = 1 << 0
	ExportIncludePossiblySame         int64 = 1 << 1
	ExportIncludePossiblyRelated      int64 = 1 << 2
	ExportIncludeNameOnly             int64 = 1 << 3
	ExportIncludeDisclosed            int64 = 1 << 4
	ExportIncludeSingleRecordEntities int64 = 1 << 5

	EntityIncludePossiblySameRelations    int64 = 1 << 6
	EntityIncludePossiblyRelatedRelations int64 = 1 << 7
	EntityIncludeNameOnlyRelations        int64 = 1 << 8
	EntityIncludeDisclosedRelations       int64 = 1 << 9

	EntityIncludeAllFeatures            int64 = 1 << 10
	EntityIncludeRepresentativeFeatures int64 = 1 << 11

	EntityIncludeEntityName           int64 = 1 << 12
	EntityIncludeRecordSummary        int64 = 1 << 13
	EntityIncludeRecordData           int64 = 1 << 14
	EntityIncludeRecordMatchingInfo   int64 = 1 << 15
	EntityIncludeRecordJSONData       int64 = 1 << 16
	EntityIncludeRecordFormattedData  int64 = 1 << 17
	EntityIncludeRecordFeatureIDs     int64 = 1 << 18
	EntityIncludeRelatedEntityName    int64 = 1 << 19
	EntityIncludeRelatedMatchingInfo  int64 = 1 << 20
	EntityIncludeRelatedRecordSummary int64 = 1 << 21
	EntityIncludeRelatedRecordData    int64 = 1 << 22

	EntityOptionIncludeInternalFeatures int64 = 1 << 23
	EntityOptionIncludeFeatureStats     int64 = 1 << 24

	FindPathPreferExclude int64 = 1 << 25

	IncludeFeatureScores int64 = 1 << 26
	SearchIncludeStats   int64 = 1 << 27
)

// Composite flags.
const (
	// ExportIncludeResolved is the older name of multi-record entities.
	ExportIncludeResolved = ExportIncludeMultiRecordEntities
	// ExportIncludeSingletons is the older name of single-record entities.
	ExportIncludeSingletons = ExportIncludeSingleRecordEntities

	ExportIncludeAllEntities      = ExportIncludeMultiRecordEntities | ExportIncludeSingleRecordEntities
	ExportIncludeAllRelationships = ExportIncludePossiblySame | ExportIncludePossiblyRelated | ExportIncludeNameOnly | ExportIncludeDisclosed

	EntityIncludeAllRelations = EntityIncludePossiblySameRelations | EntityIncludePossiblyRelatedRelations |
		EntityIncludeNameOnlyRelations | EntityIncludeDisclosedRelations

	SearchIncludeFeatureScores   = IncludeFeatureScores
	SearchIncludeResolved        = ExportIncludeMultiRecordEntities
	SearchIncludePossiblySame    = ExportIncludePossiblySame
	SearchIncludePossiblyRelated = ExportIncludePossiblyRelated
	SearchIncludeNameOnly        = ExportIncludeNameOnly
	SearchIncludeAllEntities     = SearchIncludeResolved | SearchIncludePossiblySame | SearchIncludePossiblyRelated | SearchIncludeNameOnly
)

// Recommended defaults.
const (
	RecordDefaultFlags = EntityIncludeRecordJSONData

	EntityDefaultFlags = EntityIncludeAllRelations | EntityIncludeRepresentativeFeatures | EntityIncludeEntityName |
		EntityIncludeRecordSummary | EntityIncludeRecordData | EntityIncludeRecordMatchingInfo |
		EntityIncludeRelatedEntityName | EntityIncludeRelatedRecordSummary | EntityIncludeRelatedMatchingInfo

	EntityBriefDefaultFlags = EntityIncludeRecordMatchingInfo | EntityIncludeAllRelations | EntityIncludeRelatedMatchingInfo

	ExportDefaultFlags = ExportIncludeAllEntities | ExportIncludeAllRelationships | EntityIncludeAllRelations |
		EntityIncludeRepresentativeFeatures | EntityIncludeEntityName | EntityIncludeRecordData |
		EntityIncludeRecordMatchingInfo | EntityIncludeRelatedMatchingInfo

	FindPathDefaultFlags = EntityIncludeAllRelations | EntityIncludeEntityName | EntityIncludeRecordSummary |
		EntityIncludeRelatedMatchingInfo

	WhyEntityDefaultFlags = EntityDefaultFlags | EntityIncludeRecordFeatureIDs | EntityOptionIncludeInternalFeatures |
		EntityOptionIncludeFeatureStats | IncludeFeatureScores

	HowEntityDefaultFlags = WhyEntityDefaultFlags

	SearchByAttributesAll = SearchIncludeAllEntities | EntityIncludeRepresentativeFeatures | EntityIncludeEntityName |
		EntityIncludeRecordSummary | SearchIncludeFeatureScores

	SearchByAttributesStrong = SearchIncludeResolved | SearchIncludePossiblySame | EntityIncludeRepresentativeFeatures |
		EntityIncludeEntityName | EntityIncludeRecordSummary | SearchIncludeFeatureScores

	SearchByAttributesMinimalAll    = SearchIncludeAllEntities
	SearchByAttributesMinimalStrong = SearchIncludeResolved | SearchIncludePossiblySame
	SearchByAttributesDefaultFlags  = SearchByAttributesAll
)
