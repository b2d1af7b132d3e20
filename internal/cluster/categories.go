// Package cluster implements the hybrid keyword-then-embedding grouping
// algorithm, cluster naming, and 3D layout described for the indexing engine.
package cluster

// Category holds one entry of the static keyword dictionary. Categories are
// kept in a slice, not a map, because tie-breaking among equally-scoring
// categories falls back to dictionary insertion order.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the built-in keyword dictionary covering the major
// document domains the indexer recognizes out of the box.
var DefaultCategories = []Category{
	{
		Name: "Financial Documents",
		Keywords: []string{
			"revenue", "profit", "loss", "balance sheet", "income statement", "cash flow", "expense",
			"budget", "financial", "accounting", "audit", "tax", "fiscal", "earnings", "asset",
			"liability", "equity", "ledger", "invoice", "payroll", "dividend", "depreciation",
			"amortization", "reconciliation", "accounts receivable", "accounts payable",
			"general ledger", "cost of goods", "gross margin",
		},
	},
	{
		Name: "Investment Documents",
		Keywords: []string{
			"investment", "portfolio", "stock", "bond", "mutual fund", "etf", "dividend", "yield",
			"return", "risk", "diversification", "allocation", "hedge fund", "private equity",
			"securities", "derivatives", "options", "futures", "commodities", "forex",
			"cryptocurrency", "ipo", "prospectus", "shareholder", "market cap", "blue chip",
			"index fund",
		},
	},
	{
		Name: "Banking Documents",
		Keywords: []string{
			"bank", "deposit", "withdrawal", "savings", "checking", "loan", "credit", "debit",
			"interest rate", "mortgage", "refinance", "overdraft", "wire transfer", "ach", "swift",
			"statement", "balance", "routing number", "escrow", "underwriting",
		},
	},
	{
		Name: "Insurance Documents",
		Keywords: []string{
			"insurance", "policy", "premium", "deductible", "claim", "coverage", "underwriter",
			"actuary", "beneficiary", "annuity", "indemnity", "liability insurance", "life insurance",
			"health insurance", "auto insurance", "homeowner insurance", "reinsurance", "rider",
		},
	},
	{
		Name: "Tax Documents",
		Keywords: []string{
			"tax return", "w2", "1099", "tax deduction", "taxable income", "irs", "withholding",
			"capital gains", "tax bracket", "filing", "tax credit", "estimated tax",
			"self employment tax", "sales tax", "property tax", "estate tax", "tax exempt",
			"tax audit",
		},
	},
	{
		Name: "Startup Documents",
		Keywords: []string{
			"startup", "pitch", "venture", "funding", "investor", "seed", "series a", "series b",
			"valuation", "cap table", "equity stake", "term sheet", "convertible note", "runway",
			"burn rate", "mvp", "product market fit", "traction", "growth hacking", "unicorn",
			"incubator", "accelerator", "angel investor", "bootstrapping",
		},
	},
	{
		Name: "Business Strategy",
		Keywords: []string{
			"strategy", "planning", "roadmap", "objective", "kpi", "metric", "competitive analysis",
			"market research", "swot", "business model", "go to market", "positioning",
			"differentiation", "value proposition", "stakeholder", "milestone", "deliverable",
			"business plan", "mission statement", "vision statement", "okr", "balanced scorecard",
		},
	},
	{
		Name: "Marketing",
		Keywords: []string{
			"marketing", "branding", "advertising", "campaign", "social media", "content marketing",
			"seo", "sem", "email marketing", "analytics", "conversion", "lead generation",
			"customer acquisition", "retention", "engagement", "reach", "impression",
			"click through rate", "influencer", "affiliate marketing", "remarketing", "copywriting",
			"brand awareness", "market segmentation", "target audience",
		},
	},
	{
		Name: "Sales Documents",
		Keywords: []string{
			"sales", "quota", "pipeline", "crm", "deal", "proposal", "prospect", "lead", "close",
			"upsell", "cross sell", "commission", "territory", "account management", "sales forecast",
			"cold call", "demo", "price quote", "rfp", "rfq", "tender", "bid",
		},
	},
	{
		Name: "E-commerce",
		Keywords: []string{
			"ecommerce", "online store", "shopping cart", "checkout", "payment gateway",
			"product listing", "inventory", "sku", "fulfillment", "shipping", "dropshipping",
			"marketplace", "shopify", "woocommerce", "amazon", "customer review", "return policy",
			"order tracking",
		},
	},
	{
		Name: "Supply Chain and Logistics",
		Keywords: []string{
			"supply chain", "logistics", "warehouse", "inventory management", "procurement", "vendor",
			"supplier", "distribution", "freight", "shipping", "tracking", "barcode", "last mile",
			"cold chain", "just in time", "lean manufacturing", "bill of lading", "customs",
		},
	},
	{
		Name: "Legal Documents",
		Keywords: []string{
			"contract", "agreement", "legal", "compliance", "regulation", "terms", "conditions",
			"liability", "clause", "amendment", "litigation", "lawsuit", "settlement", "attorney",
			"counsel", "jurisdiction", "statute", "ordinance", "intellectual property", "patent",
			"trademark", "copyright", "nda", "confidentiality", "arbitration", "mediation",
			"injunction", "deposition", "affidavit",
		},
	},
	{
		Name: "Agreements",
		Keywords: []string{
			"agreement", "memorandum", "understanding", "partnership", "collaboration",
			"joint venture", "service level agreement", "master service agreement",
			"statement of work", "addendum", "licensing agreement", "franchise agreement",
			"non compete", "non solicitation", "distribution agreement",
		},
	},
	{
		Name: "Regulatory and Compliance",
		Keywords: []string{
			"compliance", "regulatory", "gdpr", "hipaa", "sox", "pci", "ferpa", "ccpa",
			"data protection", "privacy policy", "consent", "breach notification", "audit trail",
			"whistleblower", "anti money laundering", "know your customer", "sanctions",
		},
	},
	{
		Name: "Medical Records",
		Keywords: []string{
			"patient", "diagnosis", "treatment", "prescription", "medical", "clinical", "hospital",
			"doctor", "physician", "nurse", "surgery", "therapy", "medication", "symptom", "disease",
			"condition", "health record", "radiology", "laboratory", "pathology", "ehr", "emr", "icd",
			"cpt", "referral", "discharge summary",
		},
	},
	{
		Name: "Health Research",
		Keywords: []string{
			"epidemiology", "clinical trial", "vaccine", "drug", "pharmaceutical", "immunology",
			"oncology", "cardiology", "neurology", "public health", "biomedical", "genomics",
			"proteomics", "medical research", "randomized controlled trial", "placebo", "cohort study",
			"meta analysis",
		},
	},
	{
		Name: "Mental Health",
		Keywords: []string{
			"psychology", "psychiatry", "therapy", "counseling", "mental health", "anxiety",
			"depression", "ptsd", "cognitive behavioral", "mindfulness", "psychotherapy", "bipolar",
			"schizophrenia", "adhd", "autism", "behavioral health", "substance abuse", "addiction",
			"rehabilitation",
		},
	},
	{
		Name: "Dental Records",
		Keywords: []string{
			"dental", "dentist", "orthodontics", "periodontal", "cavity", "filling", "crown",
			"root canal", "extraction", "implant", "braces", "oral hygiene", "gingivitis", "fluoride",
			"dental x ray",
		},
	},
	{
		Name: "Veterinary Documents",
		Keywords: []string{
			"veterinary", "animal", "pet", "vaccination", "spay", "neuter", "kennel", "livestock",
			"equine", "canine", "feline", "animal health", "rabies", "heartworm", "microchip",
			"breeder",
		},
	},
	{
		Name: "Pharmacy Documents",
		Keywords: []string{
			"pharmacy", "pharmacist", "dispensing", "formulary", "dosage", "side effects",
			"drug interaction", "generic", "brand name", "controlled substance", "compounding",
			"over the counter",
		},
	},
	{
		Name: "Physics Research",
		Keywords: []string{
			"physics", "quantum", "particle", "mechanics", "force", "velocity", "acceleration",
			"energy", "momentum", "thermodynamics", "entropy", "electromagnetic", "relativity",
			"newtonian", "gravitational", "wave function", "schrodinger", "quantum mechanics",
			"field theory", "cosmology", "astrophysics", "nuclear physics", "optics", "photon",
			"higgs boson", "standard model", "string theory", "dark matter",
		},
	},
	{
		Name: "Biology Research",
		Keywords: []string{
			"biology", "cell", "dna", "rna", "gene", "protein", "organism", "evolution",
			"natural selection", "ecology", "ecosystem", "species", "mitosis", "meiosis", "chromosome",
			"genetics", "heredity", "mutation", "adaptation", "taxonomy", "anatomy", "physiology",
			"molecular biology", "biochemistry", "microbiology", "botany", "zoology", "crispr",
			"gene editing", "cloning", "stem cell", "bioinformatics",
		},
	},
	{
		Name: "Chemistry Research",
		Keywords: []string{
			"chemistry", "molecule", "atom", "element", "compound", "reaction", "chemical",
			"organic chemistry", "inorganic chemistry", "physical chemistry", "biochemistry",
			"analytical chemistry", "synthesis", "catalyst", "polymer", "periodic table", "bond",
			"ion", "acid", "base", "ph", "titration", "spectroscopy", "chromatography",
			"electrochemistry",
		},
	},
	{
		Name: "Mathematics",
		Keywords: []string{
			"mathematics", "algebra", "calculus", "geometry", "trigonometry", "linear algebra",
			"differential equation", "integral", "derivative", "probability", "statistics", "theorem",
			"proof", "conjecture", "topology", "number theory", "combinatorics", "graph theory",
			"matrix", "vector", "eigenvalue", "fourier", "laplace",
		},
	},
	{
		Name: "Astronomy and Space",
		Keywords: []string{
			"astronomy", "telescope", "planet", "star", "galaxy", "nebula", "solar system", "orbit",
			"satellite", "space exploration", "nasa", "esa", "rocket", "spacecraft", "mars", "moon",
			"asteroid", "black hole", "supernova", "exoplanet", "hubble", "james webb",
		},
	},
	{
		Name: "Earth Science and Geology",
		Keywords: []string{
			"geology", "rock", "mineral", "fossil", "tectonic", "earthquake", "volcano", "sedimentary",
			"metamorphic", "igneous", "stratigraphy", "geomorphology", "paleontology", "seismology",
			"continental drift", "plate tectonics", "erosion", "weathering", "geological survey",
		},
	},
	{
		Name: "Environmental Science",
		Keywords: []string{
			"environment", "climate change", "global warming", "carbon emission", "sustainability",
			"renewable energy", "pollution", "biodiversity", "conservation", "deforestation", "ozone",
			"greenhouse gas", "ecosystem restoration", "recycling", "waste management",
			"carbon footprint", "environmental impact", "clean energy", "solar power", "wind energy",
			"hydroelectric", "geothermal",
		},
	},
	{
		Name: "Oceanography and Marine Science",
		Keywords: []string{
			"ocean", "marine", "coral reef", "deep sea", "tidal", "current", "salinity", "plankton",
			"marine biology", "oceanography", "submarine", "continental shelf", "sea level", "tsunami",
			"aquaculture", "fisheries", "mangrove", "estuary",
		},
	},
	{
		Name: "Meteorology and Weather",
		Keywords: []string{
			"weather", "forecast", "temperature", "precipitation", "humidity", "barometer",
			"wind speed", "hurricane", "tornado", "cyclone", "meteorology", "climate", "drought",
			"flood", "monsoon", "el nino", "la nina", "jet stream", "radar", "satellite imagery",
		},
	},
	{
		Name: "General Scientific Research",
		Keywords: []string{
			"research", "experiment", "hypothesis", "methodology", "results", "conclusion", "abstract",
			"introduction", "literature review", "discussion", "peer review", "publication", "journal",
			"citation", "scientific method", "observation", "measurement", "analysis",
		},
	},
	{
		Name: "Software Engineering",
		Keywords: []string{
			"code", "programming", "software", "development", "api", "framework", "library",
			"architecture", "design pattern", "algorithm", "debugging", "testing", "deployment",
			"devops", "continuous integration", "version control", "git", "docker", "kubernetes",
			"microservices", "backend", "frontend", "agile development", "sprint", "pull request",
			"code review", "refactoring",
		},
	},
	{
		Name: "AI Research",
		Keywords: []string{
			"artificial intelligence", "machine learning", "deep learning", "neural network",
			"transformer", "lstm", "cnn", "gan", "reinforcement learning", "nlp", "computer vision",
			"model training", "dataset", "feature engineering", "optimization", "gradient descent",
			"backpropagation", "overfitting", "regularization", "attention mechanism", "embedding",
			"llm", "generative ai", "diffusion model", "fine tuning", "prompt engineering",
		},
	},
	{
		Name: "Data Science",
		Keywords: []string{
			"data analysis", "statistics", "regression", "classification", "clustering",
			"visualization", "pandas", "numpy", "matplotlib", "jupyter", "exploratory data analysis",
			"feature selection", "dimensionality reduction", "time series", "forecasting",
			"hypothesis testing", "correlation", "data pipeline", "data warehouse", "etl", "data lake",
		},
	},
	{
		Name: "Cybersecurity",
		Keywords: []string{
			"security", "encryption", "authentication", "authorization", "vulnerability",
			"penetration testing", "firewall", "malware", "phishing", "ransomware", "cryptography",
			"ssl", "tls", "vpn", "intrusion detection", "threat", "exploit", "patch", "compliance",
			"zero trust", "soc", "siem", "incident response", "forensics",
		},
	},
	{
		Name: "Web Development",
		Keywords: []string{
			"html", "css", "javascript", "react", "angular", "vue", "typescript", "webpack",
			"responsive design", "dom", "ajax", "rest api", "graphql", "web application", "spa", "pwa",
			"tailwind", "bootstrap", "next js", "node js", "express",
		},
	},
	{
		Name: "Mobile Development",
		Keywords: []string{
			"android", "ios", "swift", "kotlin", "flutter", "react native", "mobile app", "xcode",
			"gradle", "app store", "play store", "push notification", "geolocation", "responsive",
			"touch", "cordova", "xamarin", "mobile ui", "mobile testing",
		},
	},
	{
		Name: "Cloud Computing",
		Keywords: []string{
			"cloud", "aws", "azure", "gcp", "serverless", "lambda", "ec2", "s3", "iaas", "paas",
			"saas", "load balancer", "auto scaling", "cloud formation", "terraform", "ansible",
			"container", "virtual machine", "cdn", "cloud migration",
		},
	},
	{
		Name: "Database Administration",
		Keywords: []string{
			"database", "sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
			"schema", "query", "index", "table", "join", "normalization", "replication", "sharding",
			"backup", "migration", "stored procedure", "transaction", "acid",
		},
	},
	{
		Name: "Networking and IT Infrastructure",
		Keywords: []string{
			"network", "router", "switch", "tcp", "udp", "dns", "dhcp", "ip address", "subnet",
			"bandwidth", "latency", "firewall", "proxy", "nat", "vlan", "mpls", "bgp", "ospf",
			"active directory", "ldap", "server", "rack", "data center",
		},
	},
	{
		Name: "Game Development",
		Keywords: []string{
			"game", "unity", "unreal engine", "godot", "sprite", "shader", "physics engine",
			"collision detection", "game loop", "rendering", "texture", "mesh", "animation",
			"pathfinding", "level design", "game design", "multiplayer", "fps", "rpg",
			"procedural generation",
		},
	},
	{
		Name: "Robotics",
		Keywords: []string{
			"robot", "robotics", "actuator", "sensor", "servo", "lidar", "autonomous", "kinematics",
			"path planning", "ros", "manipulator", "end effector", "computer vision", "slam",
			"inverse kinematics", "pid controller", "humanoid", "drone",
		},
	},
	{
		Name: "IoT and Embedded Systems",
		Keywords: []string{
			"iot", "internet of things", "embedded", "arduino", "raspberry pi", "microcontroller",
			"firmware", "sensor", "mqtt", "zigbee", "bluetooth", "wifi", "edge computing", "wearable",
			"smart home", "plc", "scada", "rtos", "gpio", "i2c", "spi",
		},
	},
	{
		Name: "Blockchain and Cryptocurrency",
		Keywords: []string{
			"blockchain", "bitcoin", "ethereum", "smart contract", "solidity", "token", "nft", "defi",
			"mining", "consensus", "proof of work", "proof of stake", "wallet", "decentralized", "dao",
			"web3", "dapp", "gas fee", "ledger", "hash",
		},
	},
	{
		Name: "DevOps and CI/CD",
		Keywords: []string{
			"devops", "ci cd", "jenkins", "github actions", "gitlab ci", "pipeline", "build",
			"release", "deployment", "monitoring", "grafana", "prometheus", "elk", "log aggregation",
			"artifact", "helm", "argocd", "infrastructure as code", "site reliability",
		},
	},
	{
		Name: "Mechanical Engineering",
		Keywords: []string{
			"mechanical", "cad", "solidworks", "autocad", "tolerance", "manufacturing", "cnc", "lathe",
			"milling", "welding", "thermodynamics", "fluid dynamics", "stress analysis", "fatigue",
			"gearbox", "bearing", "shaft", "turbine", "engine", "pump",
		},
	},
	{
		Name: "Electrical Engineering",
		Keywords: []string{
			"electrical", "circuit", "voltage", "current", "resistance", "capacitor", "inductor",
			"transistor", "diode", "pcb", "power supply", "amplifier", "oscillator",
			"signal processing", "control system", "plc", "motor", "generator", "transformer",
		},
	},
	{
		Name: "Civil Engineering",
		Keywords: []string{
			"civil engineering", "structural", "concrete", "steel", "bridge", "foundation",
			"geotechnical", "surveying", "hydrology", "drainage", "road design", "highway", "dam",
			"reinforcement", "load bearing", "building code", "seismic design", "soil mechanics",
		},
	},
	{
		Name: "Chemical Engineering",
		Keywords: []string{
			"chemical engineering", "process design", "reactor", "distillation", "heat exchanger",
			"mass transfer", "fluid flow", "piping", "process control", "batch process",
			"continuous process", "petrochemical", "refinery", "separation", "crystallization",
		},
	},
	{
		Name: "Aerospace Engineering",
		Keywords: []string{
			"aerospace", "aerodynamics", "propulsion", "avionics", "airframe", "thrust", "drag",
			"lift", "mach number", "wind tunnel", "flight control", "navigation", "orbit", "payload",
			"reentry", "composite material", "jet engine", "turbofan", "fuselage",
		},
	},
	{
		Name: "Architecture and Building",
		Keywords: []string{
			"architecture", "blueprint", "floor plan", "elevation", "facade", "building design",
			"interior design", "landscape", "zoning", "building permit", "renovation", "construction",
			"architect", "structural plan", "site plan", "bim", "revit", "urban planning",
		},
	},
	{
		Name: "UX UI Design",
		Keywords: []string{
			"ux", "ui", "user experience", "user interface", "wireframe", "prototype", "mockup",
			"figma", "sketch", "adobe xd", "usability testing", "persona", "user journey",
			"information architecture", "interaction design", "accessibility", "responsive design",
			"design system",
		},
	},
	{
		Name: "Graphic Design",
		Keywords: []string{
			"graphic design", "photoshop", "illustrator", "indesign", "canva", "typography",
			"color theory", "layout", "composition", "logo", "brand identity", "vector", "raster",
			"print design", "poster", "brochure", "flyer", "infographic", "visual identity",
		},
	},
	{
		Name: "Academic Papers",
		Keywords: []string{
			"thesis", "dissertation", "paper", "publication", "journal", "conference", "proceedings",
			"abstract", "citation", "bibliography", "scholarly", "peer review", "academic",
			"university", "professor", "impact factor", "doi", "arxiv", "preprint",
		},
	},
	{
		Name: "Course Materials",
		Keywords: []string{
			"lecture", "course", "syllabus", "curriculum", "assignment", "homework", "exam", "quiz",
			"grade", "semester", "tutorial", "textbook", "slides", "notes", "study guide",
			"learning objective", "lesson plan", "module", "rubric", "assessment",
		},
	},
	{
		Name: "Training Materials",
		Keywords: []string{
			"training", "workshop", "certification", "onboarding", "e learning", "webinar", "tutorial",
			"skill development", "competency", "professional development", "continuing education",
			"accreditation", "learning management system", "lms", "scorm",
		},
	},
	{
		Name: "Human Resources",
		Keywords: []string{
			"hr", "employee", "recruitment", "hiring", "onboarding", "training", "performance review",
			"compensation", "benefits", "payroll", "termination", "resignation", "job description",
			"interview", "talent management", "workforce", "organizational culture", "diversity",
			"inclusion", "employee engagement", "retention",
		},
	},
	{
		Name: "Project Management",
		Keywords: []string{
			"project", "task", "timeline", "deadline", "gantt", "agile", "scrum", "sprint", "kanban",
			"backlog", "standup", "retrospective", "stakeholder", "resource allocation",
			"risk management", "scope", "deliverable", "milestone", "jira", "asana", "trello",
			"work breakdown structure", "critical path", "earned value",
		},
	},
	{
		Name: "Meeting Notes",
		Keywords: []string{
			"meeting", "minutes", "agenda", "discussion", "action item", "attendee", "summary",
			"notes", "follow up", "decision", "brainstorming", "workshop", "session",
			"conference call", "standup notes", "retrospective notes", "all hands",
		},
	},
	{
		Name: "Customer Support",
		Keywords: []string{
			"support", "ticket", "helpdesk", "customer service", "issue", "resolution", "escalation",
			"sla", "knowledge base", "faq", "chat support", "phone support", "email support",
			"zendesk", "freshdesk", "customer satisfaction", "csat", "nps",
		},
	},
	{
		Name: "Real Estate",
		Keywords: []string{
			"property", "real estate", "lease", "rent", "mortgage", "deed", "title", "appraisal",
			"valuation", "zoning", "commercial property", "residential property", "listing", "broker",
			"agent", "escrow", "closing", "inspection", "landlord", "tenant", "condominium",
			"townhouse", "foreclosure", "mls",
		},
	},
	{
		Name: "Construction Documents",
		Keywords: []string{
			"construction", "contractor", "subcontractor", "building permit", "inspection",
			"blueprint", "estimate", "bid", "change order", "punch list", "certificate of occupancy",
			"general contractor", "safety plan", "osha", "scaffolding", "excavation", "grading",
		},
	},
	{
		Name: "Government Documents",
		Keywords: []string{
			"government", "policy", "legislation", "regulation", "federal", "state", "municipal",
			"public sector", "administration", "ministry", "department", "agency", "bureaucracy",
			"civil service", "public policy", "governance", "constitution", "parliament", "congress",
			"executive order", "proclamation", "ordinance", "statute",
		},
	},
	{
		Name: "Military and Defense",
		Keywords: []string{
			"military", "defense", "army", "navy", "air force", "marine", "intelligence", "classified",
			"security clearance", "deployment", "battalion", "regiment", "operations", "strategy",
			"logistics", "reconnaissance", "surveillance", "weapons system", "nato",
		},
	},
	{
		Name: "Personal Documents",
		Keywords: []string{
			"personal", "diary", "journal", "letter", "correspondence", "resume", "cv", "cover letter",
			"recommendation", "reference", "passport", "birth certificate", "marriage certificate",
			"will", "insurance", "warranty", "social security", "drivers license",
		},
	},
	{
		Name: "Travel and Tourism",
		Keywords: []string{
			"travel", "itinerary", "flight", "hotel", "booking", "reservation", "passport", "visa",
			"tourism", "destination", "vacation", "cruise", "airbnb", "backpacking",
			"travel insurance", "customs", "immigration", "currency exchange", "sightseeing",
		},
	},
	{
		Name: "Food and Recipes",
		Keywords: []string{
			"recipe", "cooking", "ingredient", "meal", "cuisine", "baking", "nutrition", "calorie",
			"diet", "menu", "restaurant", "food safety", "allergen", "vegan", "vegetarian",
			"gluten free", "food preparation", "kitchen", "chef", "culinary",
		},
	},
	{
		Name: "Health and Fitness",
		Keywords: []string{
			"fitness", "exercise", "workout", "gym", "weight loss", "nutrition", "diet plan", "cardio",
			"strength training", "yoga", "pilates", "marathon", "running", "bodybuilding",
			"personal trainer", "bmi", "calories", "macros", "stretching", "recovery",
		},
	},
	{
		Name: "Sports",
		Keywords: []string{
			"sports", "football", "basketball", "soccer", "baseball", "tennis", "cricket", "golf",
			"swimming", "athletics", "olympics", "tournament", "championship", "league", "playoff",
			"score", "coach", "referee", "stadium", "athlete", "team",
		},
	},
	{
		Name: "Fashion and Textile",
		Keywords: []string{
			"fashion", "clothing", "apparel", "textile", "fabric", "designer", "collection", "runway",
			"trend", "pattern", "sewing", "garment", "boutique", "sustainable fashion", "accessories",
			"couture", "ready to wear", "fashion week",
		},
	},
	{
		Name: "Creative Writing",
		Keywords: []string{
			"story", "novel", "fiction", "poetry", "narrative", "character", "plot", "dialogue",
			"theme", "setting", "prose", "verse", "chapter", "manuscript", "draft", "creative",
			"literary", "short story", "memoir", "screenplay", "playwriting",
		},
	},
	{
		Name: "News Articles",
		Keywords: []string{
			"news", "article", "press release", "journalism", "reporter", "headline", "breaking news",
			"editorial", "opinion", "interview", "coverage", "media", "newspaper", "magazine",
			"broadcast", "wire service", "syndication", "byline", "dateline",
		},
	},
	{
		Name: "Music and Audio",
		Keywords: []string{
			"music", "song", "melody", "harmony", "rhythm", "chord", "composition", "orchestra",
			"band", "album", "track", "recording", "mixing", "mastering", "producer", "lyrics",
			"tempo", "key", "scale", "genre", "concert", "playlist",
		},
	},
	{
		Name: "Photography",
		Keywords: []string{
			"photography", "camera", "lens", "exposure", "aperture", "shutter", "iso", "raw",
			"lightroom", "photoshop", "composition", "portrait", "landscape", "macro", "flash",
			"tripod", "resolution", "megapixel", "focal length", "white balance",
		},
	},
	{
		Name: "Film and Video",
		Keywords: []string{
			"film", "video", "cinema", "director", "screenplay", "script", "editing", "cinematography",
			"production", "post production", "documentary", "animation", "vfx", "storyboard",
			"shot list", "premiere pro", "final cut", "davinci resolve", "color grading",
		},
	},
	{
		Name: "History",
		Keywords: []string{
			"history", "historical", "ancient", "medieval", "renaissance", "revolution",
			"civilization", "empire", "dynasty", "war", "archaeology", "artifact", "primary source",
			"chronicle", "era", "century", "colonialism", "independence", "treaty",
		},
	},
	{
		Name: "Philosophy",
		Keywords: []string{
			"philosophy", "ethics", "metaphysics", "epistemology", "logic", "existentialism",
			"utilitarianism", "phenomenology", "ontology", "morality", "virtue", "consciousness",
			"free will", "determinism", "socrates", "plato", "aristotle", "kant", "nietzsche",
		},
	},
	{
		Name: "Psychology",
		Keywords: []string{
			"psychology", "behavior", "cognition", "perception", "motivation", "emotion",
			"personality", "social psychology", "developmental", "neuroscience", "cognitive bias",
			"memory", "attention", "conditioning", "reinforcement", "psychoanalysis", "experiment",
		},
	},
	{
		Name: "Sociology",
		Keywords: []string{
			"sociology", "society", "social structure", "culture", "institution", "stratification",
			"inequality", "class", "race", "gender", "urbanization", "globalization",
			"social movement", "community", "deviance", "norm", "socialization", "demography",
		},
	},
	{
		Name: "Economics",
		Keywords: []string{
			"economics", "gdp", "inflation", "unemployment", "monetary policy", "fiscal policy",
			"supply demand", "microeconomics", "macroeconomics", "trade", "tariff", "recession",
			"economic growth", "interest rate", "federal reserve", "central bank",
			"consumer price index",
		},
	},
	{
		Name: "Political Science",
		Keywords: []string{
			"political", "politics", "democracy", "election", "voter", "campaign", "party", "ideology",
			"liberalism", "conservatism", "geopolitics", "diplomacy", "foreign policy",
			"international relations", "sovereignty", "republic", "authoritarian", "constitution",
		},
	},
	{
		Name: "Linguistics",
		Keywords: []string{
			"linguistics", "language", "grammar", "syntax", "semantics", "phonetics", "phonology",
			"morphology", "pragmatics", "dialect", "translation", "bilingual", "etymology", "lexicon",
			"corpus", "sociolinguistics", "psycholinguistics", "computational linguistics",
		},
	},
	{
		Name: "Anthropology",
		Keywords: []string{
			"anthropology", "culture", "ethnography", "fieldwork", "tribe", "kinship", "ritual",
			"artifact", "indigenous", "folklore", "cultural anthropology", "biological anthropology",
			"archaeology", "ethnology", "cross cultural", "human evolution",
		},
	},
	{
		Name: "Religious Studies",
		Keywords: []string{
			"religion", "theology", "spiritual", "faith", "scripture", "worship", "prayer", "church",
			"mosque", "temple", "synagogue", "bible", "quran", "torah", "buddhism", "hinduism",
			"islam", "christianity", "judaism", "meditation", "pilgrimage",
		},
	},
	{
		Name: "Geography",
		Keywords: []string{
			"geography", "map", "cartography", "gis", "topography", "latitude", "longitude",
			"continent", "country", "region", "urban", "rural", "population", "migration", "land use",
			"remote sensing", "spatial analysis", "terrain", "elevation",
		},
	},
	{
		Name: "Agriculture",
		Keywords: []string{
			"agriculture", "farming", "crop", "harvest", "irrigation", "fertilizer", "pesticide",
			"soil", "livestock", "dairy", "organic farming", "sustainable agriculture", "agronomy",
			"horticulture", "aquaculture", "seed", "yield", "plantation", "greenhouse", "hydroponics",
			"agroforestry",
		},
	},
	{
		Name: "Automotive",
		Keywords: []string{
			"automotive", "vehicle", "car", "engine", "transmission", "brake", "suspension",
			"emission", "fuel", "electric vehicle", "hybrid", "battery", "horsepower", "torque",
			"odometer", "maintenance", "recall", "warranty", "dealership", "vin",
		},
	},
	{
		Name: "Aviation",
		Keywords: []string{
			"aviation", "aircraft", "pilot", "flight", "airport", "runway", "air traffic control",
			"faa", "cockpit", "altitude", "airspace", "maintenance log", "flight plan", "navigation",
			"turbulence", "landing gear", "fuselage", "wing", "hangar",
		},
	},
	{
		Name: "Maritime",
		Keywords: []string{
			"maritime", "ship", "vessel", "port", "harbor", "cargo", "container", "navigation",
			"maritime law", "admiralty", "coast guard", "shipping lane", "tonnage", "dry dock",
			"anchor", "ballast", "buoy", "lighthouse",
		},
	},
	{
		Name: "Energy",
		Keywords: []string{
			"energy", "power plant", "electricity", "grid", "renewable", "solar panel", "wind turbine",
			"hydropower", "nuclear energy", "fossil fuel", "natural gas", "coal", "petroleum", "oil",
			"energy efficiency", "smart grid", "battery storage", "kilowatt", "megawatt", "utility",
			"transmission line",
		},
	},
	{
		Name: "Nonprofit Documents",
		Keywords: []string{
			"nonprofit", "charity", "donation", "grant", "fundraising", "volunteer", "mission",
			"501c3", "foundation", "endowment", "philanthropy", "beneficiary", "outreach",
			"community service", "social impact", "annual report", "tax exempt", "board of directors",
		},
	},
	{
		Name: "Public Relations",
		Keywords: []string{
			"public relations", "pr", "press release", "media relations", "spokesperson",
			"press conference", "crisis communication", "reputation management", "media kit",
			"press coverage", "brand image", "corporate communication", "stakeholder communication",
		},
	},
	{
		Name: "Corporate Communications",
		Keywords: []string{
			"memo", "internal communication", "newsletter", "announcement", "company update",
			"town hall", "all hands", "intranet", "employee communication", "organizational update",
			"bulletin", "circular", "notice", "policy update",
		},
	},
	{
		Name: "Technical Manuals",
		Keywords: []string{
			"manual", "guide", "documentation", "specification", "instruction", "user guide",
			"reference", "handbook", "procedure", "standard", "protocol", "operation", "maintenance",
			"troubleshooting", "installation", "api documentation", "release notes", "changelog",
			"readme",
		},
	},
	{
		Name: "Research Proposals",
		Keywords: []string{
			"proposal", "grant proposal", "research plan", "funding request", "budget justification",
			"specific aims", "methodology", "literature review", "timeline", "expected outcomes",
			"principal investigator", "co investigator", "nsf", "nih",
		},
	},
	{
		Name: "Reports",
		Keywords: []string{
			"report", "quarterly report", "annual report", "status report", "progress report",
			"incident report", "audit report", "feasibility study", "white paper", "case study",
			"benchmark", "executive summary", "findings", "recommendation", "analysis report",
		},
	},
	{
		Name: "Presentations",
		Keywords: []string{
			"presentation", "slide", "powerpoint", "keynote", "pitch deck", "slide deck",
			"talking points", "visual aid", "speaker notes", "conference presentation", "webinar",
			"demo", "showcase",
		},
	},
	{
		Name: "General Documents",
		Keywords: []string{
			"document", "file", "note", "record", "log", "form", "template", "checklist", "worksheet",
			"spreadsheet", "catalog", "directory", "index", "inventory", "register", "manifest",
		},
	},
}
