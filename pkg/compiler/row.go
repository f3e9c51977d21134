package compiler

import (
	apiSheet "agrimap/pkg/api/sheet"
	"agrimap/pkg/internal/ordered"
	"agrimap/pkg/locnorm"
	"agrimap/pkg/totals"
)

type stageBuilder struct {
	record apiSheet.StageRecord
	pests  *ordered.Set[string]
}

type cropBuilder struct {
	record apiSheet.CropRecord
	stages *ordered.Map[string, stageBuilder]
}

func newCrop(name string) func() cropBuilder {
	return func() cropBuilder {
		return cropBuilder{
			record: apiSheet.CropRecord{
				Name:        name,
				TotalArea:   apiSheet.Absent,
				Opportunity: apiSheet.Absent,
			},
			stages: ordered.NewMap[string, stageBuilder](),
		}
	}
}

func newStage(name string) func() stageBuilder {
	return func() stageBuilder {
		return stageBuilder{
			record: apiSheet.StageRecord{
				Name:        name,
				TotalArea:   apiSheet.Absent,
				Opportunity: apiSheet.Absent,
				Medicines:   []apiSheet.MedicineEntry{},
			},
			pests: ordered.NewSet[string](),
		}
	}
}

// RowCompiler turns one data row into a LocationRecord.
type RowCompiler struct {
	columns  []apiSheet.ColumnDescriptor
	catalog  apiSheet.ProductCatalog
	totals   totals.Totals
	resolver *totals.Resolver

	skipBlank bool
}

// NewRowCompiler binds the column layout, the product catalog and the
// resolved province totals. totals must be complete before the first row is
// compiled.
func NewRowCompiler(columns []apiSheet.ColumnDescriptor, catalog apiSheet.ProductCatalog, t totals.Totals, resolver *totals.Resolver) *RowCompiler {
	if resolver == nil {
		resolver = totals.NewResolver(totals.DefaultToken)
	}
	return &RowCompiler{
		columns:  columns,
		catalog:  catalog,
		totals:   t,
		resolver: resolver,
	}
}

// IsProvinceLevel reports whether row aggregates a whole province.
func IsProvinceLevel(row []string) bool {
	return locnorm.IsAggregate(apiSheet.Cell(row, apiSheet.WardCol))
}

// CompileRow returns the record for row, or false for total marker rows.
// Rows with empty province and ward cells yield a record unless blank rows
// are skipped.
func (rc *RowCompiler) CompileRow(row []string) (apiSheet.LocationRecord, bool) {
	if _, marker := rc.resolver.MarkerKey(row); marker {
		return apiSheet.LocationRecord{}, false
	}
	province := apiSheet.Cell(row, apiSheet.ProvinceCol)
	ward := apiSheet.Cell(row, apiSheet.WardCol)
	if rc.skipBlank && province == "" && ward == "" {
		return apiSheet.LocationRecord{}, false
	}

	area := apiSheet.OrAbsent(apiSheet.Cell(row, apiSheet.TotalAreaCol))
	opportunity := apiSheet.OrAbsent(apiSheet.Cell(row, apiSheet.OpportunityCol))
	if IsProvinceLevel(row) {
		area, opportunity = rc.totals.Override(province, area, opportunity)
	}

	return apiSheet.LocationRecord{
		Province:    province,
		Ward:        ward,
		TotalArea:   area,
		Opportunity: opportunity,
		Crops:       rc.crops(row),
	}, true
}

func (rc *RowCompiler) crops(row []string) []apiSheet.CropRecord {
	crops := ordered.NewMap[string, cropBuilder]()
	for _, col := range rc.columns {
		value := apiSheet.Cell(row, col.ColIndex)
		if apiSheet.IsAbsent(value) {
			continue
		}

		crop := crops.GetOrCreate(col.CropName, newCrop(col.CropName))
		if col.IsCropTotal {
			if col.IsArea {
				crop.record.TotalArea = value
			}
			if col.IsOpportunity {
				crop.record.Opportunity = value
			}
			continue
		}

		stage := crop.stages.GetOrCreate(col.StageName, newStage(col.StageName))
		if col.IsStageTotal {
			if col.IsArea {
				stage.record.TotalArea = value
			}
			if col.IsOpportunity {
				stage.record.Opportunity = value
			}
		}
		if col.IsMetric() {
			continue
		}

		stage.record.Medicines = append(stage.record.Medicines, apiSheet.MedicineEntry{
			Name:     col.ProductName,
			Value:    value,
			Pest:     col.PestName,
			ImageURL: rc.catalog.Lookup(col.ProductName).Image,
		})
		if col.PestName != "" {
			stage.pests.Add(col.PestName)
		}
	}

	out := make([]apiSheet.CropRecord, 0, crops.Len())
	for _, c := range crops.Values() {
		rec := c.record
		rec.Stages = make([]apiSheet.StageRecord, 0, c.stages.Len())
		for _, s := range c.stages.Values() {
			stage := s.record
			stage.Pests = s.pests.Items()
			if stage.Pests == nil {
				stage.Pests = []string{}
			}
			rec.Stages = append(rec.Stages, stage)
		}
		if len(rec.Stages) == 0 && apiSheet.IsAbsent(rec.TotalArea) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
