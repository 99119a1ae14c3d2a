package templates

import "lexiforge-backend/models"

// catalog returns the four built-in document templates. Clause order is the
// render order; immutable clauses carry mandated legal language.
func catalog() []models.DocumentTemplate {
	return []models.DocumentTemplate{
		{
			ID:             models.DocTypeRetainer,
			Name:           "Retainer Agreement",
			Description:    "Standard legal services engagement contract defining scope and fees.",
			RequiredFields: []string{models.FieldClientName, models.FieldMatterDescription, models.FieldJurisdiction, models.FieldHourlyRate},
			Clauses: []models.ClauseDefinition{
				{
					ID:          "parties",
					Title:       "Parties & Definitions",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        `This Retainer Agreement ("Agreement") is entered into on {{effectiveDate}}, by and between {{firmName}} ("Attorney"), located in {{jurisdiction}}, and {{clientName}} ("Client"), residing at {{clientAddress}}.`,
					Explanation: "This section identifies who is signing the contract and where they are located.",
				},
				{
					ID:        "ca_disclosure",
					Title:     "California Business & Professions Code Disclosure",
					Tag:       models.TagJurisdiction,
					Immutable: true,
					Condition: &models.ClauseCondition{
						Field:    models.FieldJurisdiction,
						Operator: models.OpContainsFold,
						Value:    "california",
					},
					Body:        `In accordance with California Business and Professions Code Section 6148, this Agreement discloses that Attorney maintains professional liability insurance. Client acknowledges receipt of this disclosure.`,
					Explanation: "Mandatory disclosure for attorneys practicing under California jurisdiction.",
				},
				{
					ID:          "scope",
					Title:       "Scope of Representation",
					Tag:         models.TagStandard,
					Body:        `Attorney agrees to provide legal services to Client in connection with {{matterDescription}}. Any additional services outside this scope will require a separate written agreement.`,
					Explanation: "Crucial for preventing 'scope creep'—it defines exactly what work the lawyer will and will not do.",
				},
				{
					ID:        "billing_hourly",
					Title:     "Fees & Payment Terms (Hourly)",
					Tag:       models.TagBilling,
					Immutable: true,
					Condition: &models.ClauseCondition{
						Field:    models.FieldBillingType,
						Operator: models.OpEquals,
						Value:    string(models.BillingHourly),
					},
					Body:        `Client agrees to pay Attorney an hourly rate of ${{hourlyRate}} per hour. An initial retainer of ${{retainerAmount}} is due upon execution of this Agreement. Invoices will be issued monthly and are payable within 30 days.`,
					Explanation: "Standard hourly billing arrangement common in litigation and complex advisory.",
				},
				{
					ID:        "billing_flat",
					Title:     "Fees & Payment Terms (Flat Fee)",
					Tag:       models.TagBilling,
					Immutable: true,
					Condition: &models.ClauseCondition{
						Field:    models.FieldBillingType,
						Operator: models.OpEquals,
						Value:    string(models.BillingFlatFee),
					},
					Body:        `Client agrees to pay Attorney a flat fee of ${{flatFeeAmount}} for the entirety of the services described in the Scope of Representation. This fee is earned upon receipt and will be deposited into the Firm's operating account.`,
					Explanation: "Fixed cost arrangement providing price certainty for the client.",
				},
				{
					ID:          "confidentiality",
					Title:       "Confidentiality",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        `Attorney shall maintain the confidentiality of all information provided by Client as required by the Rules of Professional Conduct in the State of {{jurisdiction}}.`,
					Explanation: "Protects your secrets and ensures the lawyer cannot disclose your private information.",
				},
				{
					ID:    "arbitration",
					Title: "Arbitration of Disputes",
					Tag:   models.TagOptional,
					Condition: &models.ClauseCondition{
						Field:    models.FieldIncludeArbitrationClause,
						Operator: models.OpIsTrue,
					},
					Body:        `Any dispute, claim or controversy arising out of or relating to this Agreement shall be determined by arbitration in {{jurisdiction}} before one arbitrator. The parties shall equally share the costs of the arbitration.`,
					Explanation: "Requires parties to settle disputes outside of court, usually faster and more private.",
				},
				{
					ID:    "termination",
					Title: "Termination Clause",
					Tag:   models.TagOptional,
					Condition: &models.ClauseCondition{
						Field:    models.FieldIncludeTerminationClause,
						Operator: models.OpIsTrue,
					},
					Body:        `Either party may terminate this representation at any time upon written notice. Upon termination, Client shall pay all outstanding fees for services rendered through the date of termination.`,
					Explanation: "Explains how the professional relationship can be ended by either side.",
				},
				{
					ID:          "governing_law",
					Title:       "Governing Law",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        `This Agreement shall be governed by and construed in accordance with the laws of the State of {{jurisdiction}}.`,
					Explanation: "Determines which state's laws will apply if there is a dispute.",
				},
				{
					ID:          "signatures",
					Title:       "Signature Block",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        "IN WITNESS WHEREOF, the parties have executed this Agreement as of the date first above written.\n\n__________________________\n{{attorneyName}}, Attorney\n\n__________________________\n{{clientName}}, Client",
					Explanation: "The formal closing where both parties sign to make the document binding.",
				},
			},
		},
		{
			ID:             models.DocTypeEndRep,
			Name:           "End of Representation",
			Description:    "Formal notification closing a legal matter and returning files.",
			RequiredFields: []string{models.FieldClientName, models.FieldMatterDescription, models.FieldEffectiveDate},
			Clauses: []models.ClauseDefinition{
				{
					ID:          "closing",
					Title:       "Matter Closure",
					Immutable:   true,
					Body:        "Dear {{clientName}},\n\nWe are writing to formally conclude our legal representation regarding {{matterDescription}}, effective {{effectiveDate}}. Our work on this specific matter is now complete.",
					Explanation: "Clearly marks the end of the attorney-client relationship for a specific case.",
				},
				{
					ID:          "files",
					Title:       "File Disposition & Retention",
					Immutable:   true,
					Body:        `We have enclosed your original documents and the final case file. We will maintain a digital copy for our records for the period required by {{jurisdiction}} law, typically seven years. After this period, the digital file will be destroyed without further notice.`,
					Explanation: "Important notice regarding how long the firm will keep your data.",
				},
				{
					ID:          "limitations",
					Title:       "Statute of Limitations Notice",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        `Please be advised that various legal claims are subject to time limits known as "Statutes of Limitations." Our closure of this file does not toll or extend any such periods. You are responsible for future deadlines.`,
					Explanation: "A standard legal warning that you must still be aware of time limits for future actions.",
				},
				{
					ID:          "final_invoice",
					Title:       "Final Financials",
					Body:        `Your final statement is attached showing a zero balance or any final refund due. All fees have been processed according to our original agreement.`,
					Explanation: "Confirms that all financial obligations have been settled.",
				},
			},
		},
		{
			ID:             models.DocTypeCollection,
			Name:           "Collection Demand",
			Description:    "Demand letter for outstanding debts and payment notifications.",
			RequiredFields: []string{models.FieldClientName, models.FieldTotalDebt, models.FieldDueDate},
			Clauses: []models.ClauseDefinition{
				{
					ID:          "demand",
					Title:       "Formal Demand for Payment",
					Immutable:   true,
					Body:        "RE: Formal Demand for Payment - ${{totalDebt}}\n\nThis letter serves as a formal demand for payment of the outstanding balance of ${{totalDebt}} owed to {{firmName}} by {{clientName}} regarding {{matterDescription}}. Payment must be received by {{dueDate}}.",
					Explanation: "A standard legal demand letter used to initiate debt recovery.",
				},
				{
					ID:          "instructions",
					Title:       "Payment Instructions",
					Body:        `Please remit payment via check payable to {{firmName}} at the address listed above, or contact our office at {{clientEmail}} to arrange a wire transfer.`,
					Explanation: "Tells the recipient exactly how to pay the debt.",
				},
				{
					ID:          "fdcpa",
					Title:       "FDCPA Validation Notice",
					Tag:         models.TagStandard,
					Immutable:   true,
					Body:        `Unless you, within thirty days after receipt of this notice, dispute the validity of the debt, or any portion thereof, the debt will be assumed to be valid by the debt collector.`,
					Explanation: "Regulatory notice required in many jurisdictions to protect consumer rights.",
				},
				{
					ID:          "legal_action",
					Title:       "Notice of Potential Legal Action",
					Body:        `If payment is not received by the deadline, we reserve the right to pursue all legal remedies available under the laws of {{jurisdiction}}, which may include the filing of a civil lawsuit.`,
					Explanation: "Sets a hard deadline and warns of potential litigation.",
				},
			},
		},
		{
			ID:             models.DocTypeFDDReview,
			Name:           "FDD Review Summary",
			Description:    "Summary of Franchise Disclosure Document risks and key terms.",
			RequiredFields: []string{models.FieldClientName, models.FieldJurisdiction, models.FieldRetainerAmount},
			Clauses: []models.ClauseDefinition{
				{
					ID:          "overview",
					Title:       "Executive Summary",
					Immutable:   true,
					Body:        "Client: {{clientName}}\nDate of Review: {{effectiveDate}}\n\nThis document provides a legal summary of the Franchise Disclosure Document (FDD). This is a legal analysis and not a guarantee of financial performance.",
					Explanation: "A high-level summary of the review process.",
				},
				{
					ID:          "fees",
					Title:       "Key Financial Obligations",
					Body:        "Initial Franchise Fee: ${{retainerAmount}}\nRoyalty: 6% of Gross Sales\nAd Fund: 2% of Gross Sales\n\nNote: Fees are subject to the governing laws of {{jurisdiction}}.",
					Explanation: "Itemizes the recurring costs of the franchise system.",
				},
				{
					ID:          "territory",
					Title:       "Item 12: Territorial Rights",
					Body:        `The FDD indicates a [Protected/Non-Protected] territory. You should verify the exact GPS coordinates or boundaries provided in Exhibit A of the Franchise Agreement.`,
					Explanation: "Determines if other franchisees can open near you.",
				},
				{
					ID:          "termination",
					Title:       "Default and Termination",
					Immutable:   true,
					Body:        `The Franchisor maintains broad rights to terminate for "Good Cause." Specifically, failure to meet sales quotas may lead to non-renewal of the license.`,
					Explanation: "Highlights the risks of losing your business license.",
				},
				{
					ID:          "risk",
					Title:       "General Risk Assessment",
					Body:        `We have identified specific concerns regarding the non-compete clauses and the territory protections as defined by the laws of {{jurisdiction}}. We recommend negotiating these terms.`,
					Explanation: "Highlights red flags for the potential franchisee.",
				},
			},
		},
	}
}
