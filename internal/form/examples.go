package form

import "github.com/Makepad-fr/robo/internal/model"

// Examples pre-fill the form when the user asks for inspiration.
var Examples = []model.BusinessInput{
	{
		BusinessName:     "Verde Vertical Farms",
		Industry:         "Agriculture / AgTech",
		Description:      "A high-tech urban farming initiative utilizing hydroponic vertical towers in repurposed warehouse spaces. We grow leafy greens and herbs year-round with 95% less water than traditional farming, supplying local restaurants and grocery stores within a 10-mile radius to ensure peak freshness and minimal carbon footprint.",
		TargetMarket:     "Local farm-to-table restaurants, high-end grocery retailers (e.g., Whole Foods), and eco-conscious urban consumers seeking pesticide-free, hyper-local produce.",
		ProductsServices: "Premium arugula, basil, kale, and microgreens. Subscription boxes for consumers and wholesale contracts for restaurants.",
		USP:              "Hyper-local production eliminates shipping costs and spoilage, delivering harvest-day freshness that traditional agriculture cannot match.",
		FundingRequest:   "$750,000 for warehouse retrofit and hydroponic equipment",
		TeamExperience:   "Founders include an agricultural scientist with a PhD in Hydroponics and a former supply chain manager for a major grocery chain.",
		VisionMission:    "To revolutionize urban food security by growing fresh, sustainable produce exactly where it is consumed.",
	},
	{
		BusinessName:     "SilverSurfer Tech Support",
		Industry:         "Service / Education",
		Description:      "A personalized, patience-first technical support and education service designed specifically for seniors. We offer in-home visits and secure remote support to help older adults master smartphones, tablets, smart home devices, and avoid online scams.",
		TargetMarket:     "Adults aged 65+ living independently or in retirement communities, as well as their adult children (aged 40-60) who want peace of mind for their parents.",
		ProductsServices: "One-on-one tech tutoring, smart home setup (video doorbells, voice assistants), scam prevention workshops, and a monthly 'IT Help Desk' subscription.",
		USP:              "We prioritize patience and empowerment over quick fixes, using specialized curriculum designed for non-digital natives.",
		FundingRequest:   "$50,000 for marketing and initial staffing",
		TeamExperience:   "Founded by a former social worker and an IT professional who realized the gap in senior-focused tech care.",
		VisionMission:    "To bridge the digital divide and ensure no senior feels left behind in a connected world.",
	},
	{
		BusinessName:     "SoleCraft 3D",
		Industry:         "Retail / Fashion Tech",
		Description:      "A custom footwear company using 3D scanning and printing technology to create perfectly fitted sneakers. Customers scan their feet using our mobile app, customize colors and materials, and receive a pair of shoes printed with an ergonomic lattice sole adapted to their walking pattern.",
		TargetMarket:     "Sneakerheads, athletes with specific biomechanical needs, and people with difficult-to-fit foot shapes (wide/narrow/flat feet).",
		ProductsServices: "Custom-fit 3D printed sneakers, app-based foot scanning, and limited edition artist collaboration designs.",
		USP:              "The perfect fit, guaranteed. No sizes, just your foot's exact geometry, manufactured on-demand to eliminate inventory waste.",
		FundingRequest:   "$1.2M for R&D and 3D printer farm expansion",
		TeamExperience:   "Team consists of a podiatrist, a 3D printing engineer, and a former Nike footwear designer.",
		VisionMission:    "To make mass-manufacturing obsolete by putting personalization and comfort first.",
	},
	{
		BusinessName:     "Zenith Digital Detox Retreats",
		Industry:         "Hospitality / Wellness",
		Description:      "Luxury off-grid cabins located in dead-zone nature reserves, offering structured digital detox programs. Guests surrender their devices upon arrival and engage in nature immersion, meditation, and analog workshops (woodworking, painting, cooking) to reset their dopamine levels.",
		TargetMarket:     "Burned-out tech executives, creatives, and high-stress professionals seeking to disconnect and recharge.",
		ProductsServices: "Weekend and week-long all-inclusive stays, guided mindfulness sessions, organic farm-to-table meals, and 'Analog Skills' workshops.",
		USP:              "We guarantee zero connectivity. Our locations are physically shielded from cellular signals, providing the only true escape from the notification economy.",
		FundingRequest:   "$500,000 for land acquisition and cabin construction",
		TeamExperience:   "Founded by a former Silicon Valley CEO and a clinical psychologist specializing in tech addiction.",
		VisionMission:    "To help humanity reconnect with nature and themselves by disconnecting from the cloud.",
	},
}
