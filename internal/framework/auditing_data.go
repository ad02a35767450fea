package framework

// builtinAuditing is the compiled-in set of audit frameworks. Every
// methodology is keyed by the closed four-phase set; the source material's
// per-framework phase names (requirement_analysis, substantive_testing, ...)
// are normalized onto it so phase tracking works identically across
// frameworks. "general_audit" is the suggester's fallback.
var builtinAuditing = []Record{
	{
		ID:          "general_audit",
		Description: "General-purpose investigation framework for systematic examination of any subject through planning, evidence gathering, testing, and reporting",
		Questions: []string{
			"What exactly is being examined, and what question should the audit answer?",
			"What would count as reliable evidence for or against the objective?",
			"What criteria or standards should the subject be evaluated against?",
			"What has already been claimed, and what supports those claims?",
			"Who are the stakeholders and what do they need from the findings?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define the audit objective and scope",
				"Identify the evaluation criteria and standards",
				"List the evidence sources available",
				"Plan the investigation sequence",
			},
			PhaseInformationGathering: {
				"Collect documents, records, and artifacts in scope",
				"Interview or query the parties involved",
				"Record observations without judging them yet",
				"Note gaps where expected evidence is missing",
			},
			PhaseTestingEvaluation: {
				"Test each claim against the collected evidence",
				"Check consistency across independent sources",
				"Evaluate findings against the criteria",
				"Separate confirmed findings from open questions",
			},
			PhaseAnalysisReporting: {
				"Weigh the significance of each finding",
				"Draw conclusions the evidence actually supports",
				"Write up findings, conclusions, and recommendations",
				"Flag limitations and areas needing follow-up",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of the objective and key findings"},
			{Section: "scope_and_methodology", Detail: "What was examined, how, and with what limitations"},
			{Section: "findings", Detail: "Specific observations supported by evidence"},
			{Section: "conclusions", Detail: "What the findings mean against the criteria"},
			{Section: "recommendations", Detail: "Specific follow-up actions"},
		},
	},
	{
		ID:          "security_audit",
		Description: "Systematic security audit framework focusing on threat assessment, vulnerability identification, access controls, and security posture evaluation through professional security auditing methodologies",
		Questions: []string{
			"What are the primary assets and data that need protection?",
			"What are the potential threat vectors and attack surfaces?",
			"How are access controls implemented and managed?",
			"What security controls are currently in place?",
			"How are security incidents detected and responded to?",
			"What are the known vulnerabilities and their risk levels?",
			"How is third-party security risk managed?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define audit scope and objectives",
				"Identify critical assets and systems",
				"Conduct initial risk assessment",
				"Develop investigation approach",
				"Establish audit timeline and resources",
			},
			PhaseInformationGathering: {
				"Review security policies and procedures",
				"Examine network architecture and topology",
				"Analyze access control matrices",
				"Collect vulnerability scan results",
				"Interview key security personnel",
				"Review incident response logs",
			},
			PhaseTestingEvaluation: {
				"Perform access control testing",
				"Evaluate security control effectiveness",
				"Assess vulnerability management process",
				"Test incident response procedures",
				"Review compliance with security standards",
			},
			PhaseAnalysisReporting: {
				"Identify security gaps and weaknesses",
				"Assess risk levels and impact",
				"Develop findings and recommendations",
				"Create risk mitigation strategies",
				"Prepare comprehensive audit report",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of security posture and critical findings"},
			{Section: "scope_and_methodology", Detail: "Detailed description of audit scope, approach, and limitations"},
			{Section: "findings_and_observations", Detail: "Specific security gaps, weaknesses, and control deficiencies"},
			{Section: "risk_assessment", Detail: "Analysis of identified risks, likelihood, and potential impact"},
			{Section: "recommendations", Detail: "Specific actions to address identified security issues"},
			{Section: "appendices", Detail: "Supporting evidence, detailed test results, and technical documentation"},
		},
	},
	{
		ID:          "compliance_audit",
		Description: "Systematic compliance audit framework focusing on regulatory requirement assessment, policy adherence evaluation, documentation review, and compliance gap analysis",
		Questions: []string{
			"What regulatory requirements apply to this organization?",
			"How are compliance requirements documented and communicated?",
			"What policies and procedures support compliance requirements?",
			"How is compliance monitoring and measurement performed?",
			"How are compliance violations identified and addressed?",
			"How are regulatory changes identified and implemented?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Identify applicable regulations and standards",
				"Define compliance audit scope and objectives",
				"Map regulatory requirements to business processes",
				"Develop compliance testing approach",
			},
			PhaseInformationGathering: {
				"Review applicable laws and regulations",
				"Analyze industry standards and guidelines",
				"Examine contractual compliance obligations",
				"Document compliance requirement matrix",
				"Identify compliance risk areas",
			},
			PhaseTestingEvaluation: {
				"Test policy implementation and adherence",
				"Evaluate control effectiveness",
				"Review compliance monitoring procedures",
				"Assess training and awareness programs",
				"Test exception handling and remediation",
			},
			PhaseAnalysisReporting: {
				"Identify compliance gaps and deficiencies",
				"Assess risk level of non-compliance",
				"Develop remediation recommendations",
				"Create compliance improvement roadmap",
				"Prepare compliance audit report",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of compliance posture and critical gaps"},
			{Section: "regulatory_landscape", Detail: "Summary of applicable regulations and requirements"},
			{Section: "compliance_findings", Detail: "Specific compliance gaps, violations, and control weaknesses"},
			{Section: "risk_assessment", Detail: "Analysis of compliance risks and potential regulatory impact"},
			{Section: "recommendations", Detail: "Specific actions to address compliance deficiencies"},
			{Section: "implementation_roadmap", Detail: "Timeline and priorities for compliance improvements"},
		},
	},
	{
		ID:          "quality_audit",
		Description: "Systematic quality audit framework focusing on process effectiveness evaluation, quality metrics analysis, standards compliance verification, and continuous improvement assessment",
		Questions: []string{
			"What quality standards and frameworks are implemented?",
			"How are quality objectives defined and measured?",
			"What quality control processes are in place?",
			"How are quality issues identified and resolved?",
			"How is customer satisfaction measured and addressed?",
			"What quality improvement initiatives are active?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define quality audit scope and objectives",
				"Identify quality standards and requirements",
				"Map quality processes and procedures",
				"Develop quality assessment criteria",
			},
			PhaseInformationGathering: {
				"Review quality management system documentation",
				"Assess process design and implementation",
				"Analyze quality performance metrics",
				"Interview quality personnel and process owners",
				"Observe quality processes in operation",
			},
			PhaseTestingEvaluation: {
				"Test quality control effectiveness",
				"Analyze quality performance trends",
				"Review customer feedback and complaints",
				"Evaluate corrective and preventive actions",
			},
			PhaseAnalysisReporting: {
				"Identify quality gaps and opportunities",
				"Assess quality maturity and capability",
				"Develop quality improvement recommendations",
				"Prepare quality audit report",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of quality performance and key findings"},
			{Section: "quality_system_assessment", Detail: "Evaluation of quality management system effectiveness"},
			{Section: "process_findings", Detail: "Specific quality process gaps and improvement opportunities"},
			{Section: "performance_analysis", Detail: "Quality metrics analysis and trend assessment"},
			{Section: "recommendations", Detail: "Specific actions to enhance quality performance"},
		},
	},
	{
		ID:          "process_audit",
		Description: "Systematic process audit framework focusing on workflow efficiency analysis, control effectiveness evaluation, operational risk assessment, and performance measurement",
		Questions: []string{
			"What are the key business processes and their objectives?",
			"How are processes documented and controlled?",
			"What are the process performance indicators and targets?",
			"What controls are embedded within processes?",
			"How is process efficiency measured and improved?",
			"How are process exceptions handled?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define process audit scope and objectives",
				"Identify critical business processes",
				"Map process flows and dependencies",
				"Establish performance evaluation criteria",
			},
			PhaseInformationGathering: {
				"Document current process flows",
				"Identify process inputs, outputs, and controls",
				"Map process roles and responsibilities",
				"Analyze process handoffs and interfaces",
				"Review process documentation and procedures",
			},
			PhaseTestingEvaluation: {
				"Test process controls effectiveness",
				"Evaluate segregation of duties",
				"Review exception handling procedures",
				"Test data integrity and validation controls",
			},
			PhaseAnalysisReporting: {
				"Measure process efficiency and effectiveness",
				"Identify process bottlenecks and delays",
				"Analyze process improvement opportunities",
				"Prepare process audit findings and recommendations",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of process performance and key findings"},
			{Section: "process_landscape", Detail: "Summary of audited processes and their criticality"},
			{Section: "control_assessment", Detail: "Evaluation of process controls and governance effectiveness"},
			{Section: "efficiency_analysis", Detail: "Process performance metrics and improvement opportunities"},
			{Section: "recommendations", Detail: "Specific actions to optimize process performance"},
		},
	},
	{
		ID:          "financial_audit",
		Description: "Systematic financial audit framework focusing on internal control evaluation, accuracy verification procedures, risk assessment methodology, and authorization control testing",
		Questions: []string{
			"What are the key financial processes and controls?",
			"How are financial transactions authorized and recorded?",
			"What are the segregation of duties in financial processes?",
			"How is financial data validated and reconciled?",
			"How are financial risks identified and mitigated?",
			"How is access to financial systems controlled?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define financial audit scope and materiality",
				"Assess financial statement risk areas",
				"Identify key financial processes and controls",
				"Establish sampling methodology for testing",
			},
			PhaseInformationGathering: {
				"Evaluate design of financial controls",
				"Review authorization and approval controls",
				"Analyze access controls to financial systems",
				"Collect reconciliations and supporting documentation",
			},
			PhaseTestingEvaluation: {
				"Perform detailed transaction testing",
				"Conduct analytical procedures and variance analysis",
				"Verify account balances and reconciliations",
				"Test journal entries and adjustments",
				"Perform cut-off and completeness testing",
			},
			PhaseAnalysisReporting: {
				"Summarize control deficiencies and findings",
				"Assess financial reporting accuracy",
				"Evaluate compliance with accounting standards",
				"Prepare financial audit report",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of the financial control environment and key findings"},
			{Section: "controls_assessment", Detail: "Evaluation of internal controls design and operating effectiveness"},
			{Section: "financial_findings", Detail: "Specific control deficiencies and compliance issues"},
			{Section: "materiality_assessment", Detail: "Analysis of financial impact and significance of findings"},
			{Section: "recommendations", Detail: "Specific actions to strengthen financial controls and processes"},
		},
	},
	{
		ID:          "it_audit",
		Description: "Systematic IT audit framework focusing on system security assessment, data integrity verification, technology governance evaluation, and change management review",
		Questions: []string{
			"What are the critical IT systems and infrastructure components?",
			"How are IT systems secured and access controlled?",
			"What are the data backup and recovery procedures?",
			"How is change management implemented across IT systems?",
			"How is system availability and performance monitored?",
			"How is data integrity and accuracy ensured?",
		},
		Methodology: map[Phase][]string{
			PhasePlanning: {
				"Define IT audit scope and objectives",
				"Identify critical systems and applications",
				"Assess IT risk landscape and priorities",
				"Establish technical testing approach",
			},
			PhaseInformationGathering: {
				"Review IT architecture and infrastructure",
				"Assess system security configurations",
				"Evaluate access control implementations",
				"Review system documentation and procedures",
			},
			PhaseTestingEvaluation: {
				"Test IT general controls effectiveness",
				"Evaluate change management controls",
				"Assess data backup and recovery controls",
				"Test disaster recovery capabilities",
			},
			PhaseAnalysisReporting: {
				"Assess the IT governance framework",
				"Evaluate IT risk management processes",
				"Analyze IT performance management",
				"Prepare IT audit findings and recommendations",
			},
		},
		Reporting: []ReportSection{
			{Section: "executive_summary", Detail: "High-level overview of the IT control environment and critical findings"},
			{Section: "governance_assessment", Detail: "Evaluation of IT governance framework and processes"},
			{Section: "systems_findings", Detail: "Specific system security and control deficiencies"},
			{Section: "risk_analysis", Detail: "IT risks and their potential business impact"},
			{Section: "recommendations", Detail: "Specific actions to strengthen IT controls and governance"},
		},
	},
}

// builtins returns the compiled-in records for a domain.
func builtins(d Domain) []Record {
	if d == Auditing {
		return builtinAuditing
	}
	return builtinPlanning
}
