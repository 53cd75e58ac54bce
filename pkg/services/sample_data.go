package services

import "smart-assets-api/pkg/models"

const (
	lampPostDescription = "عامود انارة حديد كشاف واحد LED ارتفاع 4 متر"
	facilitiesDept      = "ادارة الخدمات و المرافق"
	notAvailable        = "Not Available"
)

// SampleAssets returns the ten-row demonstration inventory served when no source is configured.
func SampleAssets() *AssetStore {
	return NewAssetStore([]models.AssetRecord{
		{TagID: "24007520.0", Description: lampPostDescription, City: "جدة", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24000282.0", Description: "هاتف CISCO CP-7841", City: "جدة", Custodian: "ادارة التخطيط و قياس الأداء", Cost: 57.5, NetBookValue: 57.5, RemainingUsefulLife: 0.3, Manufacturer: "CISCO"},
		{TagID: "24007457.0", Description: lampPostDescription, City: "جدة", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24000395.0", Description: "جهاز حاسب الي HP Z620 WORKSTATION INTEL XEON مع شاشة DELL", City: "جدة", Custodian: "مركز المخاطر الجيولوجية", Cost: 125.7, NetBookValue: 125.7, RemainingUsefulLife: 0.3, Manufacturer: "HP"},
		{TagID: "24009041.0", Description: lampPostDescription, City: "الرياض", Custodian: facilitiesDept, Cost: 45.0, NetBookValue: 45.0, RemainingUsefulLife: 1.2, Manufacturer: notAvailable},
		{TagID: "24009261.0", Description: lampPostDescription, City: "جدة", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24007518.0", Description: lampPostDescription, City: "جدة", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24007458.0", Description: lampPostDescription, City: "جدة", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24007397.0", Description: lampPostDescription, City: "جدة", Custodian: "ادارة الامن والصحة والسلامة", Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 2.5, Manufacturer: notAvailable},
		{TagID: "24007191.0", Description: lampPostDescription, City: "الرياض", Custodian: facilitiesDept, Cost: 90.0, NetBookValue: 90.0, RemainingUsefulLife: 0.8, Manufacturer: notAvailable},
	})
}
