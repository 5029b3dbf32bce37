// Package content selects and formats the curated report text for each
// participant: key strengths, development areas, priority recommendations,
// score interpretations, and the narrative summary. Every lookup table here
// is fixed at build time; selection is fully deterministic.
package content

import "github.com/jonathan/survey-profiler/internal/types"

// Interpretations holds the per-(dimension, band) score interpretation used
// in score cells.
var Interpretations = map[types.Dimension]map[types.Band]string{
	types.DimDirectness: {
		types.BandLow:        "Often unclear or indirect, leading to misunderstandings and reduced trust. High-priority development to improve organisational alignment and results.",
		types.BandDeveloping: "Sometimes avoids or softens key messages, creating ambiguity or delayed action. Needs deliberate practice in clear, constructive communication while maintaining respect.",
		types.BandModerate:   "Demonstrates clear communication in familiar contexts but may adapt inconsistently across diverse settings. A solid base to build stronger clarity and consistency.",
		types.BandHigh:       "Speaks clearly and transparently in most situations, usually balancing directness with cultural sensitivity. Minor inconsistencies may appear under pressure but rarely impact understanding.",
		types.BandVeryHigh:   "Communicates expectations and feedback with exceptional clarity and honesty while remaining sensitive to cultural norms. Consistently sets a standard for open, trust-building dialogue.",
	},
	types.DimTaskRelation: {
		types.BandLow:        "Strongly biased toward task or relationship focus, often undermining either performance or trust. Immediate attention needed to rebalance.",
		types.BandDeveloping: "Tends to favour either deadlines or harmony, causing friction or missed opportunities. Needs targeted practice in adjusting focus to context.",
		types.BandModerate:   "Handles tasks and relationships fairly well but may default to one side under stress. A good platform for conscious flexibility.",
		types.BandHigh:       "Regularly integrates task focus and relationship-building, with only minor leanings toward one side depending on context.",
		types.BandVeryHigh:   "Seamlessly balances getting results with nurturing relationships. Maintains efficiency while fostering strong trust and collaboration.",
	},
	types.DimConflict: {
		types.BandLow:        "Routinely avoids or mismanages conflict, creating ongoing friction or disengagement. Priority focus area for leadership growth.",
		types.BandDeveloping: "Often postpones or minimises conflict, leading to unresolved tension and lost opportunities for improvement.",
		types.BandModerate:   "Handles some conflicts well but may avoid or delay others, allowing small issues to grow. Solid basis for strengthening proactive dialogue.",
		types.BandHigh:       "Generally comfortable engaging in healthy conflict and resolving issues before they escalate; occasional hesitancy may surface in complex situations.",
		types.BandVeryHigh:   "Consistently addresses disagreements early and constructively, transforming tension into innovation and stronger collaboration.",
	},
	types.DimAdaptability: {
		types.BandLow:        "Rarely adjusts to cultural differences; may unintentionally create misunderstanding or exclusion. High-priority development.",
		types.BandDeveloping: "Often relies on default styles or assumptions, limiting success in diverse environments. Needs deliberate exposure and practice.",
		types.BandModerate:   "Shows willingness to adapt but may revert to familiar norms in complex or unfamiliar cultural settings. Good foundation for broader adaptability.",
		types.BandHigh:       "Comfortable adapting to most cultural situations, learning quickly and adjusting behaviour effectively, with only minor gaps.",
		types.BandVeryHigh:   "Rapidly reads cultural cues and flexes communication styles with ease, enabling seamless collaboration across geographies and teams.",
	},
	types.DimEmpathy: {
		types.BandLow:        "Rarely considers others' experiences or perspectives, limiting trust and collaboration. Critical area for growth.",
		types.BandDeveloping: "Sometimes listens without fully integrating others' views, or focuses on tasks at the expense of relationships. Needs deliberate empathy-building practices.",
		types.BandModerate:   "Shows understanding and concern for others in many situations, but may overlook perspectives when under pressure.",
		types.BandHigh:       "Frequently shows empathy and perspective-taking, creating strong relationships and effective collaboration, with only occasional gaps.",
		types.BandVeryHigh:   "Consistently demonstrates deep empathy and integrates others' viewpoints into decision-making, strengthening trust and inclusion across teams.",
	},
}

// strengthTexts is the Key Strength body bank, present only for the two
// qualifying bands.
var strengthTexts = map[types.Dimension]map[types.Band]string{
	types.DimDirectness: {
		types.BandHigh:     "You communicate with clarity and honesty, ensuring that expectations and feedback are well understood.\nYour ability to balance directness with cultural sensitivity helps you give clear guidance without creating defensiveness, a key factor in building psychological safety.\nBecause you consistently express both what needs to be done and why it matters, you minimise misunderstandings and keep projects on track.",
		types.BandVeryHigh: "You communicate with exceptional clarity and candid honesty, ensuring that expectations and feedback are unmistakably understood.\nYour strong ability to balance directness with thoughtful cultural sensitivity helps you give clear guidance without creating defensiveness, a crucial factor in building psychological safety.\nBecause you consistently and explicitly express both what needs to be done and why it matters, you reliably minimise misunderstandings and keep projects firmly on track.",
	},
	types.DimTaskRelation: {
		types.BandHigh:     "You manage the balance between getting things done and nurturing relationships with skill.\nThis allows you to meet deadlines without sacrificing team cohesion.\nYour ability to adapt, sometimes prioritising efficiency and at other times focusing on rapport, creates resilient, high-performing teams. Colleagues value you as someone who drives outcomes while ensuring people feel respected and included.",
		types.BandVeryHigh: "You manage the balance between getting things done and nurturing relationships with notable skill, which allows you to meet deadlines while maintaining strong team cohesion.\nYour highly adaptive ability to switch focus, sometimes prioritising efficiency and at other times rapport, creates resilient, consistently high-performing teams.\nColleagues strongly value you as someone who drives outcomes while ensuring people feel respected and included.",
	},
	types.DimConflict: {
		types.BandHigh:     "You approach conflict as an opportunity to clarify issues and strengthen collaboration.\nThis creates space for innovation and better decisions.\nYour comfort in addressing disagreements early helps prevent small issues from escalating and keeps energy focused on solutions. By modelling constructive conflict management, you help build a culture where diverse opinions are valued and integrated.",
		types.BandVeryHigh: "You approach conflict as a valuable opportunity to clarify issues and strengthen collaboration, which consistently creates space for innovation and better decisions.\nYour strong comfort in addressing disagreements early helps prevent small issues from escalating and keeps energy tightly focused on solutions.\nBy reliably modelling constructive conflict management, you help build a culture where diverse opinions are genuinely valued and effectively integrated.",
	},
	types.DimAdaptability: {
		types.BandHigh:     "You read cultural cues quickly and adjust your communication and behaviour with ease, enabling smooth collaboration across geographies and teams.\nThis flexibility helps you build rapport with clients and colleagues from diverse backgrounds, strengthening partnerships and reducing misunderstandings.\nYour openness to different customs and practices demonstrates respect and enhances organisational reputation.",
		types.BandVeryHigh: "You read cultural cues very quickly and adjust your communication and behaviour with notable ease, enabling smooth collaboration across geographies and teams.\nThis pronounced flexibility helps you build strong rapport with clients and colleagues from diverse backgrounds, strengthening partnerships and reducing misunderstandings.\nYour evident openness to different customs and practices demonstrates deep respect and enhances organisational reputation.",
	},
	types.DimEmpathy: {
		types.BandHigh:     "You naturally seek to understand others' thoughts and emotions, enabling you to build trust and influence without authority.\nColleagues feel heard and valued in your presence, which strengthens engagement and loyalty.\nYour capacity to integrate multiple viewpoints leads to more inclusive decisions and stronger team cohesion.",
		types.BandVeryHigh: "You naturally and actively seek to understand others' thoughts and emotions, enabling you to build strong trust and influence without authority.\nColleagues consistently feel heard and genuinely valued in your presence, which strengthens engagement and loyalty.\nYour strong capacity to integrate multiple viewpoints leads to more inclusive decisions and robust team cohesion.",
	},
}

// developmentTexts is the Development Area body bank, present only for the
// two qualifying bands.
var developmentTexts = map[types.Dimension]map[types.Band]string{
	types.DimDirectness: {
		types.BandDeveloping: "You may at times leave some room for ambiguity, causing others to guess at priorities or next steps.\nYou might occasionally avoid difficult conversations or soften messages enough that key information is partly lost.\nDeveloping greater clarity, while respecting cultural nuances, will help you build trust and reduce rework or conflict.",
		types.BandLow:        "You often leave considerable room for ambiguity, causing others to guess at priorities or next steps.\nYou may frequently avoid difficult conversations or soften messages so much that key information is lost.\nEstablishing greater clarity, while still respecting cultural nuances, will help you rebuild trust and significantly reduce rework or conflict.",
	},
	types.DimTaskRelation: {
		types.BandDeveloping: "Your current pattern may sometimes tilt too heavily toward either tasks or relationships, which can lead to occasional missed deadlines or disengaged team members.\nThere may be times when relational needs are overlooked in the drive for efficiency, or where progress slows because harmony is prioritised over results.\nLearning to flex more consciously between task and relationship focus will help you maintain productivity and strengthen trust simultaneously.",
		types.BandLow:        "Your current pattern often tilts heavily toward either tasks or relationships, which can lead to repeated missed deadlines or disengaged team members.\nRelational needs are frequently overlooked in the drive for efficiency, or progress often slows because harmony is prioritised over results.\nLearning to flex deliberately between task and relationship focus is essential to restore productivity and rebuild trust.",
	},
	types.DimConflict: {
		types.BandDeveloping: "You may hesitate to surface conflict or wait until issues become urgent, which can allow small problems to grow.\nWhen conflict does arise, you might sometimes withdraw or react defensively, reducing trust and slowing resolution.\nDeveloping skills to initiate timely, balanced conflict conversations will increase team resilience and creative problem solving.",
		types.BandLow:        "You often hesitate to surface conflict or wait until issues become urgent, which allows small problems to grow significantly.\nWhen conflict arises, you may withdraw or react defensively, which reduces trust and slows resolution.\nEstablishing skills to initiate timely, balanced conflict conversations is essential to strengthen team resilience and improve problem solving.",
	},
	types.DimAdaptability: {
		types.BandDeveloping: "You may sometimes default to familiar communication styles, missing subtle cues that a different approach is needed.\nThere can be a tendency to rely on assumptions about other cultures rather than pausing to learn or ask questions.\nBuilding greater awareness of cross-cultural norms and practising adaptive strategies will expand your effectiveness in global or multi-cultural settings.",
		types.BandLow:        "You often default to familiar communication styles, missing important cues that a different approach is needed.\nThere is a frequent tendency to rely on assumptions about other cultures rather than pausing to learn or ask questions.\nEstablishing greater awareness of cross-cultural norms and consistently practising adaptive strategies will be essential to operate effectively in global or multi-cultural settings.",
	},
	types.DimEmpathy: {
		types.BandDeveloping: "In high-pressure situations, you may at times focus more on tasks than on understanding the emotional context, which can erode trust.\nAt times you may listen without fully integrating what you have heard into next steps, missing chances to strengthen collaboration.\nDeliberately pausing to explore how others experience a situation, and how that should shape your response, will deepen relationships and improve outcomes.",
		types.BandLow:        "In high-pressure situations, you often focus on tasks rather than understanding the emotional context, which erodes trust.\nYou may listen without integrating what you have heard into next steps, which repeatedly misses chances to strengthen collaboration.\nEstablishing a deliberate pause to explore how others experience a situation, and allowing that to shape your response, is essential to repair relationships and improve outcomes.",
	},
}

// recommendationTexts is the Priority Recommendation body bank. Unlike the
// strength and development banks, bodies are fixed per dimension, not
// score-dependent, and are already split into three lines.
var recommendationTexts = map[types.Dimension]string{
	types.DimDirectness:   "Practise concise \"what–why–next\" framing in meetings to improve clarity and focus.\nSeek regular feedback on the clarity of both written and verbal messages to identify blind spots.\nRole-play challenging conversations with a mentor or coach to build skill and confidence under pressure.",
	types.DimTaskRelation: "Schedule brief relationship-building check-ins during busy projects to strengthen trust without losing momentum.\nBalance meeting agendas to include both task updates and discussions about team well-being and collaboration.\nReflect weekly on recent interactions to ensure neither task completion nor relationship maintenance is being overlooked.",
	types.DimConflict:     "Use the S.C.O.P.E. Feedforward Model™ or similar forward-facing methods to reframe conflicts as shared problem-solving opportunities.\nDebrief conflicts quickly and constructively to capture lessons and prevent repetition without assigning blame.\nPractise early, low-stakes conflict conversations, starting with minor disagreements to build confidence and reduce escalation.",
	types.DimAdaptability: "Before key meetings, research the cultural norms and communication preferences of stakeholders or teams you'll engage with.\nObserve and adapt to subtle verbal and non-verbal cues in new settings, adjusting style to maintain inclusivity.\nSeek regular cross-cultural experiences or mentorship (e.g., international projects, diverse team collaborations) to broaden adaptive range.",
	types.DimEmpathy:      "Pause to paraphrase others' viewpoints before responding, ensuring their perspective is accurately understood.\nPractise a \"day-in-the-life\" reflection, imagining issues from a colleague's or stakeholder's perspective to build deeper empathy.\nAsk open-ended, curiosity-driven questions in meetings to surface perspectives that might otherwise remain hidden.",
}

// Placeholder titles and the shared caution body.
const (
	noStrengthsTitle           = "No key strengths were identified."
	noAdditionalStrengthsTitle = "No additional key strengths were identified."
	noAreasTitle               = "No developmental areas were identified."
	noAdditionalAreasTitle     = "No additional developmental areas were identified."
	placeholderBody            = "This reflects limited positive signals in this cycle, interpret with caution."
)

// Fixed summary sentences.
const (
	summaryNoData = "Your results indicate a balanced profile across dimensions. Continue developing your capabilities through practice and feedback. Focus on situations that challenge you to grow while leveraging your existing strengths."

	summaryNoStrengths     = "Your profile shows balanced capabilities across the measured dimensions."
	summaryNoDevelopment   = "Continue refining your skills through deliberate practice and seeking feedback."
	summaryWithDevelopment = "Focus on targeted practice in these areas while leveraging your strengths to build confidence and momentum."
	summaryAllStrong       = "Look for opportunities that stretch your capabilities while maintaining your current effectiveness."
)
