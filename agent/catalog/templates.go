package catalog

import (
	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// defaultTemplates is the production catalog. Costs are USD baseline and the
// slice is read-only: Find hands out the entries as-is and callers must not
// mutate them.
func defaultTemplates() []contractx.PermitTemplate {
	return []contractx.PermitTemplate{
		{
			Key: "austin|tx|food truck",
			Summary: "Mobile food operations in Austin require health approval, " +
				"fire inspection, and commissary verification before launch.",
			KeyPermits: []string{
				"Mobile Food Vendor Permit",
				"Fire Safety Inspection",
				"Commissary Agreement",
				"Sales Tax Permit",
			},
			Agencies: []string{
				"Austin Public Health",
				"Austin Fire Department",
				"Texas Comptroller",
			},
			BaseTimelineDays: 32,
			BaseCost:         4200,
			CostItems: []contractx.CostItem{
				{Label: "Health Permit + Inspection", Amount: 375},
				{Label: "Fire Safety Inspection", Amount: 160},
				{Label: "Sales Tax Permit", Amount: 0},
				{Label: "Commissary Fees", Amount: 2100},
				{Label: "Insurance + Licensing", Amount: 1565},
			},
			Risks: []contractx.Risk{
				{
					Title:       "Parking Location Approval",
					Severity:    contractx.SeverityMedium,
					Description: "Preferred vending zones may require separate authorization and can delay launch.",
				},
				{
					Title:       "Menu Change Review",
					Severity:    contractx.SeverityLow,
					Description: "Adding high-risk foods triggers an extra health review.",
				},
			},
			Documents: []contractx.Document{
				{Name: "Commissary Letter", Required: true},
				{Name: "Menu + Food Handling Plan", Required: true},
				{Name: "Insurance Certificate", Required: true},
				{Name: "Vehicle Registration", Required: true},
				{Name: "Wastewater Disposal Plan", Required: false},
			},
			Offices: []contractx.Office{
				{Name: "Austin Public Health", Address: "1520 Rutherford Ln, Austin", Hours: "Mon-Fri 8:00-5:00"},
				{Name: "Austin Fire Department", Address: "401 E 5th St, Austin"},
				{Name: "Texas Comptroller Office", Address: "111 E 17th St, Austin"},
			},
			Checklist: []contractx.ChecklistItem{
				{
					ID:      "ATX-FT-01",
					Title:   "Mobile Food Vendor Permit",
					Agency:  "Austin Public Health",
					DueDate: "Feb 18",
					Cost:    375,
					Status:  contractx.ChecklistInProgress,
				},
				{
					ID:      "ATX-FT-02",
					Title:   "Fire Inspection Certificate",
					Agency:  "Austin Fire Department",
					DueDate: "Feb 22",
					Cost:    160,
					Status:  contractx.ChecklistTodo,
				},
				{
					ID:      "ATX-FT-03",
					Title:   "Commissary Agreement",
					Agency:  "Travis County",
					DueDate: "Feb 14",
					Cost:    0,
					Status:  contractx.ChecklistDone,
				},
			},
			Timeline: []contractx.Milestone{
				{ID: "M1", Title: "Submit mobile vendor application", TargetDate: "Feb 18", Owner: "Founder", Status: contractx.MilestoneActive},
				{ID: "M2", Title: "Complete fire inspection", TargetDate: "Feb 25", Owner: "AFD", Status: contractx.MilestonePlanned},
				{ID: "M3", Title: "Health inspection + license issuance", TargetDate: "Mar 5", Owner: "APH", Status: contractx.MilestoneWaiting},
			},
			Actions: []contractx.Action{
				{ID: "A1", Task: "Upload commissary letter + menu", Owner: "Founder", Priority: contractx.SeverityHigh, ETA: "Tomorrow"},
				{ID: "A2", Task: "Book fire inspection slot", Owner: "Operations", Priority: contractx.SeverityMedium, ETA: "This week"},
				{ID: "A3", Task: "Confirm insurance coverage", Owner: "Legal", Priority: contractx.SeverityLow, ETA: "Next week"},
			},
		},
		{
			Key: "austin|tx|restaurant",
			Summary: "Brick-and-mortar restaurants in Austin need health plan review, " +
				"building permits, fire safety inspections, and occupancy approval.",
			KeyPermits: []string{
				"Food Establishment Permit",
				"Certificate of Occupancy",
				"Fire Safety Inspection",
				"Signage Permit",
			},
			Agencies: []string{
				"Austin Public Health",
				"Austin Development Services",
				"Austin Fire Department",
			},
			BaseTimelineDays: 55,
			BaseCost:         12500,
			CostItems: []contractx.CostItem{
				{Label: "Health Plan Review", Amount: 650},
				{Label: "Building Permit + Inspections", Amount: 5800},
				{Label: "Fire Safety Inspection", Amount: 220},
				{Label: "Occupancy Certificate", Amount: 430},
				{Label: "Equipment + Vendor Fees", Amount: 5400},
			},
			Risks: []contractx.Risk{
				{
					Title:       "Construction Permit Lead Time",
					Severity:    contractx.SeverityHigh,
					Description: "Tenant improvements often require multiple inspections and can extend timelines.",
				},
				{
					Title:       "Ventilation Requirements",
					Severity:    contractx.SeverityMedium,
					Description: "Kitchen upgrades may trigger additional mechanical permits.",
				},
			},
			Documents: []contractx.Document{
				{Name: "Floor Plan + Equipment Layout", Required: true},
				{Name: "Food Safety SOP", Required: true},
				{Name: "Lease + Zoning Approval", Required: true},
				{Name: "Grease Trap Agreement", Required: false},
			},
			Offices: []contractx.Office{
				{Name: "Austin Development Services", Address: "6310 Wilhelmina Delco Dr, Austin"},
				{Name: "Austin Public Health", Address: "1520 Rutherford Ln, Austin"},
				{Name: "Austin Fire Department", Address: "401 E 5th St, Austin"},
			},
			Checklist: []contractx.ChecklistItem{
				{
					ID:      "ATX-R-01",
					Title:   "Food Establishment Permit",
					Agency:  "Austin Public Health",
					DueDate: "Mar 5",
					Cost:    650,
					Status:  contractx.ChecklistTodo,
				},
				{
					ID:      "ATX-R-02",
					Title:   "Certificate of Occupancy",
					Agency:  "Development Services",
					DueDate: "Mar 20",
					Cost:    430,
					Status:  contractx.ChecklistTodo,
				},
				{
					ID:      "ATX-R-03",
					Title:   "Fire Safety Inspection",
					Agency:  "Austin Fire Department",
					DueDate: "Mar 12",
					Cost:    220,
					Status:  contractx.ChecklistTodo,
				},
			},
			Timeline: []contractx.Milestone{
				{ID: "M1", Title: "Plan review + building permit", TargetDate: "Mar 2", Owner: "ADS", Status: contractx.MilestoneActive},
				{ID: "M2", Title: "Fire inspection", TargetDate: "Mar 12", Owner: "AFD", Status: contractx.MilestonePlanned},
				{ID: "M3", Title: "Final occupancy approval", TargetDate: "Mar 25", Owner: "ADS", Status: contractx.MilestoneWaiting},
			},
			Actions: []contractx.Action{
				{ID: "A1", Task: "Submit floor plan + equipment list", Owner: "Founder", Priority: contractx.SeverityHigh, ETA: "This week"},
				{ID: "A2", Task: "Schedule pre-opening health inspection", Owner: "Operations", Priority: contractx.SeverityMedium, ETA: "2 weeks"},
				{ID: "A3", Task: "Confirm zoning clearance", Owner: "Legal", Priority: contractx.SeverityMedium, ETA: "Next week"},
			},
		},
	}
}
