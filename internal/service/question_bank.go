package service

// Canned question banks backing the generation pathway. Roles without a
// dedicated bank fall back to the generic set.
var generatedQuestionBank = map[string][]string{
	"Software Engineer": {
		"Describe the difference between a stack and a queue.",
		"Explain the concept of time complexity and provide examples.",
		"How would you implement a linked list in JavaScript?",
		"What is the difference between HTTP and HTTPS?",
		"Explain the MVC architecture pattern.",
		"What is the difference between let, const, and var in JavaScript?",
		"Describe a challenging project you worked on and how you solved problems.",
		"Explain RESTful API design principles.",
		"How do you approach debugging a complex issue?",
		"What is your experience with agile development methodologies?",
	},
	"Data Analyst": {
		"Explain the difference between supervised and unsupervised learning.",
		"What tools have you used for data visualization?",
		"Describe a time when you had to clean messy data.",
		"How would you detect outliers in a dataset?",
		"Explain the difference between correlation and causation.",
		"What statistical methods do you commonly use in your analyses?",
		"How do you communicate technical findings to non-technical stakeholders?",
		"Describe your experience with SQL and database querying.",
		"What is your approach to validating the results of your analysis?",
		"How do you stay updated with the latest trends in data analysis?",
	},
	"Project Manager": {
		"How do you handle scope creep in a project?",
		"Describe your approach to risk management.",
		"How do you prioritize tasks in a project with tight deadlines?",
		"Tell me about a time when you had to deal with a difficult team member.",
		"What project management methodologies are you familiar with?",
		"How do you ensure effective communication among team members?",
		"Describe a project that failed and what you learned from it.",
		"How do you track project progress?",
		"What tools do you use for project management?",
		"How do you handle budget constraints in a project?",
	},
}

var genericQuestionBank = []string{
	"Tell me about yourself.",
	"What are your strengths and weaknesses?",
	"Why are you interested in this role?",
	"Describe a challenging situation you faced and how you handled it.",
	"Where do you see yourself in 5 years?",
}
