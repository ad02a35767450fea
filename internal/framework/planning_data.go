package framework

// builtinPlanning is the compiled-in set of planning mental models.
// Each record is inert guidance data — questions and structure the
// calling agent reasons with. The "default" record is the suggester's
// fallback when no keyword matches.
var builtinPlanning = []Record{
	{
		ID:          "default",
		Description: "General-purpose planning model for any knowledge domain",
		Questions: []string{
			"What exactly are we trying to achieve, and how will we know when it is done?",
			"What constraints and requirements shape the solution?",
			"What are the concrete actions, in order, that get us there?",
			"How will we validate that the result meets the requirements?",
		},
		Stages: []Stage{
			{Name: "analyze_requirements", Detail: "Clarify the goal, constraints, and success criteria"},
			{Name: "create_action_plan", Detail: "Lay out an ordered list of concrete actions"},
			{Name: "execute_plan", Detail: "Work through the actions step by step"},
			{Name: "validate_results", Detail: "Check the outcome against the requirements"},
		},
		NextSteps: "Walk the stages in order, revisiting the requirements whenever a step produces surprising results",
	},
	{
		ID:          "first_principles",
		Description: "Break complex problems down into fundamental elements and build solutions from the ground up",
		Questions: []string{
			"What are the most basic, undeniable facts about this problem?",
			"What assumptions am I making that might not be true?",
			"If I had to explain this to someone with no background knowledge, what would I say?",
			"What are the core components that cannot be reduced further?",
			"How can I combine these fundamentals in new ways?",
		},
		Stages: []Stage{
			{Name: "fundamentals", Detail: "List the basic, irreducible elements"},
			{Name: "assumptions", Detail: "Identify and challenge assumptions"},
			{Name: "synthesis", Detail: "Combine fundamentals into solutions"},
		},
		NextSteps: "Consider how the fundamental elements can be combined or approached differently",
	},
	{
		ID:          "systems_thinking",
		Description: "Understand complex problems by examining the relationships and interactions between different parts of a system",
		Questions: []string{
			"What are the key components or stakeholders in this system?",
			"How do these components interact with each other?",
			"What feedback loops exist in the system?",
			"What are the unintended consequences of potential changes?",
			"How does this system connect to larger systems?",
		},
		Stages: []Stage{
			{Name: "components", Detail: "Identify all key elements and stakeholders"},
			{Name: "relationships", Detail: "Map connections and dependencies"},
			{Name: "feedback_loops", Detail: "Find reinforcing and balancing loops"},
			{Name: "leverage_points", Detail: "Identify where small changes create big impact"},
		},
		NextSteps: "Look for high-leverage intervention points and consider system-wide effects",
	},
	{
		ID:          "design_thinking",
		Description: "Human-centered approach to innovation that integrates the needs of people, possibilities of technology, and requirements for business success",
		Questions: []string{
			"Who are the users and what do they really need?",
			"What problems are we trying to solve?",
			"How might we approach this differently?",
			"What would the ideal user experience look like?",
			"How can we test our assumptions quickly?",
		},
		Stages: []Stage{
			{Name: "empathize", Detail: "Understand the user's needs and context"},
			{Name: "define", Detail: "Frame the problem clearly"},
			{Name: "ideate", Detail: "Generate multiple solution ideas"},
			{Name: "prototype", Detail: "Build testable versions"},
			{Name: "test", Detail: "Gather feedback and iterate"},
		},
		NextSteps: "Start with user research and rapid prototyping to validate assumptions",
	},
	{
		ID:          "critical_path",
		Description: "Identify the sequence of dependent tasks that determines the minimum time needed to complete a project",
		Questions: []string{
			"What are all the tasks required to complete this project?",
			"Which tasks depend on others being completed first?",
			"What is the longest sequence of dependent tasks?",
			"Where are the bottlenecks and constraints?",
			"What tasks can be done in parallel?",
		},
		Stages: []Stage{
			{Name: "tasks", Detail: "List all required tasks with time estimates"},
			{Name: "dependencies", Detail: "Map which tasks depend on others"},
			{Name: "critical_path", Detail: "Identify the longest sequence of dependencies"},
			{Name: "parallel_work", Detail: "Find tasks that can be done simultaneously"},
		},
		NextSteps: "Focus resources on critical path tasks and optimize parallel work streams",
	},
	{
		ID:          "swot_analysis",
		Description: "Analyze internal strengths and weaknesses alongside external opportunities and threats to inform strategic decisions",
		Questions: []string{
			"What are our key strengths and advantages?",
			"What are our main weaknesses or limitations?",
			"What opportunities exist in the environment?",
			"What threats or risks do we need to consider?",
			"How can we leverage strengths to capitalize on opportunities?",
		},
		Stages: []Stage{
			{Name: "strengths", Detail: "Internal positive factors and advantages"},
			{Name: "weaknesses", Detail: "Internal limitations and areas for improvement"},
			{Name: "opportunities", Detail: "External positive factors and potential gains"},
			{Name: "threats", Detail: "External risks and potential challenges"},
		},
		NextSteps: "Develop strategies that leverage strengths and opportunities while addressing weaknesses and threats",
	},
	{
		ID:          "task_decomposition",
		Description: "Break down complex objectives into manageable, executable tasks with clear dependencies, resources, and success criteria for optimal workflow execution",
		Questions: []string{
			"What is the ultimate objective we're trying to achieve?",
			"What are the major phases or milestones needed to reach this objective?",
			"What specific tasks are required within each phase?",
			"Which tasks depend on others being completed first?",
			"What resources, skills, and tools are needed for each task?",
			"How can we measure progress and success for each task?",
			"Which tasks can be executed in parallel vs sequentially?",
			"What are the potential bottlenecks and how can we address them?",
		},
		Stages: []Stage{
			{Name: "objective_clarity", Detail: "Define clear, measurable end goals"},
			{Name: "phase_breakdown", Detail: "Identify major phases and milestones"},
			{Name: "task_identification", Detail: "List specific, actionable tasks"},
			{Name: "dependency_mapping", Detail: "Chart task relationships and prerequisites"},
			{Name: "resource_allocation", Detail: "Assign required resources to each task"},
			{Name: "success_criteria", Detail: "Define completion and quality metrics"},
			{Name: "parallelization", Detail: "Identify opportunities for concurrent execution"},
			{Name: "bottleneck_analysis", Detail: "Find and mitigate potential delays"},
		},
		NextSteps: "Create detailed task execution plan with timeline, assign responsibilities, and establish monitoring checkpoints",
	},
	{
		ID:          "devils_advocate",
		Description: "Systematically challenge assumptions, identify potential flaws, and stress-test plans by arguing against proposed solutions to strengthen decision-making",
		Questions: []string{
			"What assumptions are we making that could be wrong?",
			"What are the strongest arguments against this approach?",
			"What could go catastrophically wrong with this plan?",
			"Who would disagree with this decision and why?",
			"What evidence contradicts our current thinking?",
			"How might our biases be influencing this decision?",
		},
		Stages: []Stage{
			{Name: "assumption_challenges", Detail: "Question fundamental assumptions behind the plan"},
			{Name: "failure_scenarios", Detail: "Identify ways the plan could fail spectacularly"},
			{Name: "opposing_perspectives", Detail: "Consider viewpoints of critics and skeptics"},
			{Name: "evidence_gaps", Detail: "Find missing information or contradictory data"},
			{Name: "risk_amplification", Detail: "Explore worst-case scenarios and their likelihood"},
		},
		NextSteps: "Use identified weaknesses to strengthen the plan, gather missing evidence, and develop contingency strategies for identified risks",
	},
	{
		ID:          "scenario_planning",
		Description: "Explore multiple plausible future scenarios to test strategy robustness, identify risks and opportunities, and prepare for uncertainty",
		Questions: []string{
			"What are the key driving forces and uncertainties affecting our situation?",
			"What are 3-4 distinctly different scenarios that could unfold?",
			"How would our current strategy perform in each scenario?",
			"What early warning signals should we monitor for each scenario?",
			"What robust strategies work well across multiple scenarios?",
		},
		Stages: []Stage{
			{Name: "driving_forces", Detail: "Identify key variables that will shape the future"},
			{Name: "scenario_development", Detail: "Create distinct, plausible future narratives"},
			{Name: "strategy_testing", Detail: "Evaluate current plans against each scenario"},
			{Name: "signal_monitoring", Detail: "Define indicators to track scenario emergence"},
			{Name: "robustness_analysis", Detail: "Find strategies that work across scenarios"},
		},
		NextSteps: "Develop adaptive strategies, establish monitoring systems for early signals, and create contingency plans for high-impact scenarios",
	},
	{
		ID:          "decision_trees",
		Description: "Structure complex decisions by mapping out options, probabilities, and outcomes to identify optimal paths forward",
		Questions: []string{
			"What is the main decision we need to make?",
			"What are all the possible options or alternatives available?",
			"What are the potential outcomes for each option?",
			"What is the probability of each outcome occurring?",
			"What are the costs, benefits, and risks of each path?",
			"What additional information would improve our decision quality?",
		},
		Stages: []Stage{
			{Name: "decision_framing", Detail: "Clearly define the decision to be made"},
			{Name: "option_enumeration", Detail: "List all viable alternatives and choices"},
			{Name: "outcome_mapping", Detail: "Identify possible results for each option"},
			{Name: "probability_assessment", Detail: "Estimate likelihood of different outcomes"},
			{Name: "value_analysis", Detail: "Quantify costs, benefits, and utility"},
			{Name: "sensitivity_testing", Detail: "Evaluate how assumptions affect conclusions"},
		},
		NextSteps: "Select optimal decision path based on analysis, plan implementation steps, and establish monitoring for key assumptions",
	},
	{
		ID:          "feedback_loops",
		Description: "Design systematic feedback mechanisms to enable continuous learning, adaptation, and improvement throughout project execution",
		Questions: []string{
			"What key metrics and signals should we monitor continuously?",
			"How frequently should we collect and review feedback?",
			"How will we distinguish between noise and meaningful signals?",
			"What triggers should prompt immediate course corrections?",
			"How will we integrate feedback into planning and decision processes?",
		},
		Stages: []Stage{
			{Name: "signal_identification", Detail: "Define key metrics and indicators to track"},
			{Name: "collection_mechanisms", Detail: "Establish systematic feedback gathering methods"},
			{Name: "noise_filtering", Detail: "Distinguish actionable insights from irrelevant data"},
			{Name: "trigger_systems", Detail: "Set thresholds for course corrections"},
			{Name: "integration_processes", Detail: "Embed feedback into decision workflows"},
		},
		NextSteps: "Implement feedback collection systems, establish review cadences, and create response protocols for different types of feedback",
	},
	{
		ID:          "minimum_viable_plan",
		Description: "Create the simplest plan that delivers core value while minimizing risk and effort, enabling rapid learning and iteration",
		Questions: []string{
			"What is the absolute minimum we need to achieve our core objective?",
			"Which features or components are essential vs nice-to-have?",
			"What is the smallest experiment that validates our key assumptions?",
			"What risks can we eliminate by starting small and simple?",
			"What is our strategy for scaling from MVP to full vision?",
		},
		Stages: []Stage{
			{Name: "core_identification", Detail: "Define absolute essential requirements"},
			{Name: "feature_prioritization", Detail: "Separate must-haves from nice-to-haves"},
			{Name: "assumption_testing", Detail: "Design minimal experiments for validation"},
			{Name: "risk_reduction", Detail: "Eliminate unnecessary complexity and uncertainty"},
			{Name: "scaling_strategy", Detail: "Plan evolution from MVP to full solution"},
		},
		NextSteps: "Implement MVP approach, establish rapid feedback cycles, and plan iterative enhancement based on learnings",
	},
	{
		ID:          "threat_modeling",
		Description: "Systematically identify, analyze, and mitigate potential threats, vulnerabilities, and attack vectors to protect valuable assets and systems",
		Questions: []string{
			"What are we trying to protect (assets, data, systems, processes)?",
			"Who are the potential threat actors and what motivates them?",
			"What attack vectors and methods could they use?",
			"What vulnerabilities exist in our current defenses?",
			"What would be the impact of successful attacks?",
			"What countermeasures and controls can we implement?",
		},
		Stages: []Stage{
			{Name: "asset_identification", Detail: "Catalog valuable assets that need protection"},
			{Name: "threat_actor_analysis", Detail: "Profile potential attackers and their capabilities"},
			{Name: "attack_vector_mapping", Detail: "Identify possible methods of compromise"},
			{Name: "vulnerability_assessment", Detail: "Find weaknesses in current defenses"},
			{Name: "risk_prioritization", Detail: "Rank threats by likelihood and impact"},
			{Name: "mitigation_strategies", Detail: "Design countermeasures and controls"},
		},
		NextSteps: "Implement highest priority mitigations, establish monitoring and incident response procedures, and regularly update the threat model",
	},
	{
		ID:          "rapid_prototyping",
		Description: "Accelerate learning and validation through quick, low-fidelity experiments that test core assumptions before full implementation",
		Questions: []string{
			"What core assumptions or hypotheses need testing?",
			"What is the fastest way to create a testable prototype?",
			"What level of fidelity is needed to get meaningful feedback?",
			"What specific questions will the prototype help us answer?",
			"When should we move from prototype to full implementation?",
		},
		Stages: []Stage{
			{Name: "assumption_identification", Detail: "Define key hypotheses to test"},
			{Name: "speed_optimization", Detail: "Minimize time from idea to testable prototype"},
			{Name: "fidelity_balancing", Detail: "Match prototype detail level to learning needs"},
			{Name: "iteration_cycles", Detail: "Build rapid feedback and improvement loops"},
			{Name: "graduation_criteria", Detail: "Define when to move beyond prototyping"},
		},
		NextSteps: "Build minimal testable prototype, gather user feedback, iterate based on learnings, and plan transition to full solution",
	},
}
