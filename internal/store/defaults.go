package store

import (
	"time"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
)

// DefaultState returns a fresh copy of the built-in seed snapshot. Every
// call allocates new slices so a mutated state never aliases the seed.
func DefaultState() models.AppState {
	now := time.Now().UTC().Format(time.RFC3339)
	return models.AppState{
		AdminPassword: "admin123",
		Config: models.SiteConfig{
			SiteName: "Retlcommerce",
			Tagline: "Create & Run Your Brand With Retlcommerce",
			PrimaryColor: "#70f0b8",
			SecondaryColor: "#1a1a2e",
			LogoText: "R",
			ContactEmail: "retlcommerce@gmail.com",
			ContactPhone: "+92 300 1234567",
			Address: "Karachi, Pakistan",
			MaintenanceMode: false,
			SocialLinks: map[string]string{
				"facebook": "https://www.facebook.com/people/Retlcommerce/100077338210068/",
				"instagram": "https://www.instagram.com/retlcommerce/",
				"linkedin": "https://www.linkedin.com/company/retlcommerce.com/",
				"tiktok": "https://www.tiktok.com/@retlcommerce",
				"youtube": "https://www.youtube.com/channel/UC_Tcx4ssZ0pG_DxayDpX4rw",
				"twitter": "https://x.com/retlcommerce",
			},
			SEO: models.SEOConfig{
				MetaTitle: "Retlcommerce | Strategic Brand & Retail Solutions Pakistan",
				MetaDescription: "Retlcommerce is the leading partner for brand building and retail digital transformation in Pakistan.",
				Keywords: "brand building Pakistan, retail consultancy, e-commerce Pakistan, ERP retail",
			},
		},
		Services: []models.Service{
			{
				ID: "1",
				Slug: "brand-building-consultancy",
				Title: "Brand Building Consultancy",
				Icon: "fas fa-rocket",
				Description: "Comprehensive strategies to conceptualize, launch, and scale your brand.",
				FullDescription: "We provide end-to-end consultancy for new and existing brands. Our approach combines local market research, consumer psychology, and competitive analysis to carve out a unique space for your business in Pakistan.",
				Category: models.CategoryConsultancy,
				Benefits: []string{"Market Differentiation", "Strategic Growth Roadmap", "Investor Readiness"},
				Process: []string{"Initial Brand Audit", "Deep Market Research", "Strategy Workshop", "Execution Plan", "Growth Monitoring"},
				Pricing: []models.PricingTier{
					{Name: "Startup", Price: "PKR 45,000/mo", Features: []string{"Brand Strategy", "Market Analysis", "1 Strategy Call/mo"}},
					{Name: "Growth", Price: "PKR 125,000/mo", Features: []string{"Full Strategy", "Competitor Analysis", "Weekly Syncs"}},
					{Name: "Enterprise", Price: "Custom Quote", Features: []string{"Global Scaling", "M&A Support", "Dedicated Partner"}},
				},
			},
			{
				ID: "2",
				Slug: "logo-design-identity",
				Title: "Logo Design & Brand Identity",
				Icon: "fas fa-pen-nib",
				Description: "Visual storytelling through impactful logos and consistent brand guidelines.",
				FullDescription: "Our design team focuses on creating visual identities that resonate with your target audience. From color palettes to typography, we ensure every element tells your brand story effectively.",
				Category: models.CategoryDesign,
				Benefits: []string{"High Brand Recognition", "Professional Aesthetic", "Style Guides"},
				Process: []string{"Discovery Call", "Moodboarding", "Concept Design", "Refinement", "Delivery"},
				Pricing: []models.PricingTier{
					{Name: "Identity Pack", Price: "PKR 35,000", Features: []string{"Primary Logo", "Secondary Logo", "Color Palette"}},
					{Name: "Full Brand Book", Price: "PKR 85,000", Features: []string{"Full Identity", "Stationery", "Guidelines"}},
				},
			},
			{
				ID: "5",
				Slug: "website-development",
				Title: "E-commerce Web Development",
				Icon: "fas fa-laptop-code",
				Description: "High-performance e-commerce websites built for conversion.",
				FullDescription: "Custom web solutions that are mobile-first, SEO-optimized, and lightning-fast. We build digital storefronts that drive sales in Pakistan with local payment integrations.",
				Category: models.CategoryDevelopment,
				Benefits: []string{"Fast Load Times", "Local Payments", "Mobile Responsive"},
				Process: []string{"Wireframing", "UI/UX Design", "Frontend Dev", "Testing", "Deployment"},
				Pricing: []models.PricingTier{
					{Name: "Shopify Starter", Price: "PKR 75,000", Features: []string{"Theme Setup", "Product Upload", "Payment Integration"}},
					{Name: "Custom E-com", Price: "PKR 250,000", Features: []string{"Unique Design", "API Sync", "Advanced Analytics"}},
				},
			},
			{
				ID: "8",
				Slug: "erp-software",
				Title: "ERP Software for Retail",
				Icon: "fas fa-chart-line",
				Description: "Integrated solutions for inventory, sales, and operations management.",
				FullDescription: "Our upcoming 2026 ERP solution is specifically designed for retail businesses in Pakistan, bridging physical and digital sales channels.",
				Category: models.CategorySoftware,
				IsComingSoon: true,
				Benefits: []string{"Centralized Data", "Automated Inventory", "Tax Reporting"},
				Process: []string{"Early Access", "Configuration", "Data Import", "Training", "Live Support"},
				Pricing: []models.PricingTier{
					{Name: "Standard", Price: "PKR 10,000/mo", Features: []string{"Inventory Control", "Sales Reports", "2 Users"}},
					{Name: "Professional", Price: "PKR 25,000/mo", Features: []string{"Multi-warehouse", "Unlimited Users"}},
				},
			},
			{
				ID: "9",
				Slug: "product-sourcing",
				Title: "Product Sourcing & QA",
				Icon: "fas fa-box-open",
				Description: "Direct connections with top manufacturers in Faisalabad and Karachi.",
				FullDescription: "We help you navigate the complex manufacturing landscape of Pakistan, ensuring high quality and competitive pricing for your textile, leather, and consumer goods.",
				Category: models.CategoryConsultancy,
				Benefits: []string{"Factory Direct Pricing", "Quality Inspection", "Lead Time Management"},
				Process: []string{"Sampling", "Audit", "Production", "QC Check", "Logistics"},
				Pricing: []models.PricingTier{
					{Name: "Consultant", Price: "PKR 30,000", Features: []string{"Supplier List", "Intro Call", "Contract Templates"}},
				},
			},
			{
				ID: "10",
				Slug: "logo-design-identity",
				Title: "Packaging & Print Design",
				Icon: "fas fa-pallet",
				Description: "Unboxing experiences that turn customers into brand advocates.",
				FullDescription: "Visual appeal on the shelf and in the hand. We design packaging that protects your product and elevates your brand status.",
				Category: models.CategoryDesign,
				Benefits: []string{"Premium Feel", "Eco-friendly Options", "Print-ready Files"},
				Process: []string{"Dieline Creation", "Graphic Design", "3D Mockup", "Print Sample", "Final Files"},
				Pricing: []models.PricingTier{
					{Name: "Single Box", Price: "PKR 20,000", Features: []string{"Custom Dieline", "Visual Design", "1 Revision"}},
				},
			},
			{
				ID: "11",
				Slug: "marketing-automation",
				Title: "Marketing Automation",
				Icon: "fas fa-bullhorn",
				Description: "Scale your sales with AI-driven marketing and email workflows.",
				FullDescription: "Automate your customer journey from acquisition to retention. We set up high-converting email, SMS, and WhatsApp automation for Pakistani brands.",
				Category: models.CategoryMarketing,
				Benefits: []string{"Higher LTV", "Reduced Churn", "Personalized Experience"},
				Process: []string{"Audit", "Tool Selection", "Workflow Design", "Implementation", "Optimization"},
				Pricing: []models.PricingTier{
					{Name: "Starter", Price: "PKR 15,000/mo", Features: []string{"Email Flows", "Abandon Cart", "Basic SMS"}},
				},
			},
			{
				ID: "12",
				Slug: "retail-ops",
				Title: "Retail Operations Management",
				Icon: "fas fa-store",
				Description: "Optimizing the day-to-day of your physical and digital store.",
				FullDescription: "Efficiency is the key to profit. We optimize your staff workflows, inventory rotation, and customer service protocols.",
				Category: models.CategoryConsultancy,
				Benefits: []string{"Lower Costs", "Better CX", "Standardized Ops"},
				Process: []string{"SOP Audit", "Workshop", "System Implementation", "Training", "Follow-up"},
				Pricing: []models.PricingTier{
					{Name: "SOP Pack", Price: "PKR 50,000", Features: []string{"Staff Manuals", "Inventory Tracking Docs", "CS Scripts"}},
				},
			},
		},
		Posts: []models.BlogPost{
			{
				ID: "1",
				Title: "How to Build a Legacy Brand in Pakistan: The 2026 Retlcommerce Guide",
				Excerpt: "Discover the essential steps to creating a brand that survives and thrives in the unique retail landscape of Pakistan.",
				Content: "Building a sustainable legacy brand in the Pakistani retail market requires a deep understanding of cultural nuances and evolving consumer behavior. In 2026, the shift towards authenticity is undeniable. Consumers are no longer just looking for products; they are looking for stories and values that resonate with their local identity. Retlcommerce specializes in bridging this gap by providing strategic consultancy that aligns traditional values with modern e-commerce standards.\n\nTo succeed, founders must move beyond the \"copy-paste\" model of international brands. At Retlcommerce, we emphasize the \"Brand Ecosystem\" approach, where your physical presence, digital storefront, and supply chain work in total harmony. This holistic view ensures that your retail brand remains resilient against market fluctuations and maintains a premium position in the minds of the target audience.\n\nThe rise of \"WhatsApp commerce\" and social-first selling has changed the entry barriers for retail in Pakistan. However, scaling requires a technical foundation that many startups lack. By leveraging Retlcommerce’s proprietary growth frameworks, brands can navigate the complex logistics of Karachi, Lahore, and Islamabad while maintaining a global-standard user experience on their digital platforms.\n\nConsistency is the final pillar of a legacy brand. Many Pakistani startups fail not due to a lack of vision, but due to inconsistent quality control and fragmented customer support. Retlcommerce provides the operational protocols needed to ensure that every touchpoint—from the first Instagram ad to the final unboxing—screams professional excellence. Learn more about the evolving landscape at [The World Bank - Pakistan Digital Report](https://www.worldbank.org/en/country/pakistan).\n\nIn conclusion, building a brand in 2026 is about technical leverage and emotional resonance. Retlcommerce stands as the premier partner for founders who are serious about building the next generation of retail e-commerce powerhouses in the region. Our mission is to transform local vision into global legacy through data-driven strategy.",
				Category: "Brand Strategy",
				Author: "Muhammad Ali",
				Date: "2026-01-01",
				Image: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "2",
				Title: "Top 5 E-commerce Payment Gateways in Pakistan for 2026",
				Excerpt: "A comparison of JazzCash, EasyPaisa, PayFast, and more to help you choose the best fit.",
				Content: "The e-commerce landscape in Pakistan has undergone a massive digital transformation regarding payment processing. For any retail business, selecting the right payment gateway is the difference between a high conversion rate and a frustrated customer. In 2026, the integration of seamless checkout experiences is no longer optional. Retlcommerce has analyzed the top performers to help you optimize your e-commerce financial infrastructure.\n\nWhile Cash on Delivery (COD) still accounts for a significant portion of retail transactions, digital wallets like JazzCash and EasyPaisa have reached record adoption rates. These platforms offer instant settlement and high reliability for small to medium-sized retail e-commerce ventures. Retlcommerce helps brands integrate these wallets directly into their custom web solutions for a frictionless experience.\n\nFor enterprise-level operations, card processing remains the standard for international and high-value domestic sales. Gateways like PayFast, Safepay, and Foree have set new standards for security and API flexibility. Retlcommerce recommends these providers for brands looking to minimize transaction failures and provide a \"bank-grade\" security feel to their customers. Refer to the latest guidelines at [State Bank of Pakistan - Digital Payments](https://www.sbp.org.pk/dfs/index.html).\n\nChoosing a gateway isn’t just about transaction fees; it’s about the support ecosystem. Retlcommerce evaluates gateways based on their settlement cycles, chargeback handling, and developer support. A retail brand using an unstable gateway will see a direct drop in its customer lifetime value (LTV). Our technical team ensures that your Retlcommerce-built store is always synced with the latest security protocols.\n\nUltimately, a multi-modal payment strategy is the best approach for 2026. By offering a mix of wallets, cards, and bank transfers, your retail e-commerce brand can cater to the widest possible demographic. Retlcommerce provides the technical expertise to manage these complex integrations, allowing you to focus on selling while we handle the secure flow of funds.",
				Category: "E-commerce",
				Author: "Ali Khan",
				Date: "2026-01-05",
				Image: "https://images.unsplash.com/photo-1563013544-824ae1b704d3?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "3",
				Title: "Sourcing from Faisalabad: A Beginner Guide to Textile Procurement",
				Excerpt: "Navigating the Manchester of Pakistan requires local knowledge and strict quality control.",
				Content: "Faisalabad, often called the \"Manchester of Pakistan,\" is the heartbeat of the country’s textile and retail industry. For new brands entering the e-commerce space, sourcing from Faisalabad offers unparalleled access to high-quality fabrics and manufacturing. However, the market is complex and requires a strategic approach. Retlcommerce acts as your local eyes and ears to ensure you get factory-direct pricing without sacrificing quality.\n\nThe procurement process begins with understanding yarn types and fabric weights. Whether you are building an apparel brand or a home textile line, the technical specifications are critical. Retlcommerce works with vetted manufacturers in Faisalabad to source premium cotton, lawn, and linen that meet international standards. Without proper guidance, retail startups often fall into the trap of inconsistent fabric batches.\n\nQuality Control (QC) is the most difficult part of the sourcing journey. At Retlcommerce, we implement a multi-stage inspection protocol. We don’t just check the finished product; we audit the production line. This level of detail is why our partner brands have the lowest return rates in the e-commerce industry. For general industry standards, visit the [Trade Development Authority of Pakistan](https://www.tdap.gov.pk/).\n\nNegotiating with manufacturers in Faisalabad is an art form. It requires deep knowledge of the local cost of production and seasonal fluctuations. Retlcommerce’s sourcing team has decades of experience in the local market, allowing us to secure MOQs (Minimum Order Quantities) that are accessible for growing e-commerce brands. We bridge the gap between large-scale factories and agile startups.\n\nIn summary, Faisalabad is a goldmine for any retail brand that knows how to navigate its alleys. With Retlcommerce as your sourcing partner, you gain access to a network of reliable manufacturers and a streamlined supply chain. This strategic advantage allows your brand to offer superior products at competitive prices, which is essential for winning in the 2026 retail market.",
				Category: "Sourcing",
				Author: "Aziz un Nisa",
				Date: "2026-01-10",
				Image: "https://images.unsplash.com/photo-1558444479-c8a510525b8e?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "4",
				Title: "Why Packaging is Your Silent Salesman in Retail",
				Excerpt: "In a crowded market, the first physical touchpoint—the box—can make or break a brand.",
				Content: "In the world of retail e-commerce, the first physical interaction a customer has with your brand is through your packaging. It is no longer just a container; it is a critical marketing tool. In 2026, the \"unboxing experience\" has become a viral sensation on social media, making packaging design a high-ROI investment for any brand. Retlcommerce helps founders design packaging that protects, promotes, and delights.\n\nPremium packaging signals a premium product. Even if your retail item is affordable, high-quality cardstock, custom tissue paper, and branded stickers can elevate the perceived value significantly. Retlcommerce’s design team focuses on creating a \"sensory journey\" for the customer, ensuring that the touch, look, and even the sound of the package reflect your brand identity.\n\nSustainability is the new standard in 2026. Pakistani consumers are increasingly aware of their environmental footprint. Retlcommerce advocates for eco-friendly packaging solutions that don’t compromise on aesthetics. By using recycled materials and soy-based inks, your e-commerce brand can appeal to the conscious consumer while reducing waste. Learn more about sustainable trends at [Shopify - Sustainable Packaging](https://www.shopify.com/blog/sustainable-packaging).\n\nPracticality is just as important as beauty. E-commerce packaging must be durable enough to survive the rough logistics networks of Pakistan. Retlcommerce tests every design for structural integrity to ensure that your customer receives their order in perfect condition. A broken box leads to a negative review, regardless of how good the product inside is.\n\nTo wrap up, packaging is your silent salesman. It works 24/7 to reinforce your brand story long after the digital ad has been forgotten. Retlcommerce provides the design and sourcing expertise to make your packaging a standout feature of your retail business. Don’t settle for plain brown boxes when you can create a memorable brand moment.",
				Category: "Design",
				Author: "Sarah Ahmed",
				Date: "2026-01-15",
				Image: "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "5",
				Title: "The Rise of TikTok Shop and its Impact on Pakistani Brands",
				Excerpt: "Social commerce is evolving. Learn how to leverage short-form video for direct sales.",
				Content: "TikTok has fundamentally changed the way people discover and buy products in Pakistan. In 2026, TikTok Shop has become a dominant force in the retail e-commerce landscape, offering a direct path from discovery to purchase. Brands that have embraced this \"social commerce\" revolution are seeing unprecedented growth rates. Retlcommerce helps businesses navigate this new platform to maximize their sales potential.\n\nThe key to success on TikTok is authenticity. Traditional, high-budget commercials often underperform compared to raw, behind-the-scenes content. At Retlcommerce, we teach brands how to create \"shoppable\" videos that feel like organic entertainment. This approach builds trust quickly and encourages impulsive yet satisfied purchases from a highly engaged audience.\n\nInfluencer collaboration is the fuel for TikTok Shop. However, choosing the right voice is critical. Retlcommerce specializes in identifying micro-influencers who have a genuine connection with their followers. These creators can drive more targeted traffic to your retail e-commerce store than a celebrity with millions of disinterested fans. For official business tips, check out [TikTok for Business](https://www.tiktok.com/business).\n\nTechnical integration between TikTok and your e-commerce backend is where most brands struggle. Retlcommerce ensures that your inventory, orders, and customer data are perfectly synced across all platforms. This prevents overselling and ensures that your fulfillment team is always one step ahead. A seamless technical setup is the backbone of any high-volume social commerce operation.\n\nIn conclusion, TikTok Shop is not just a trend; it is a permanent shift in how retail happens. Retlcommerce provides the strategic and technical support needed to turn your TikTok presence into a high-performance sales engine. If you aren’t selling on TikTok in 2026, you are leaving a massive portion of the Pakistani market to your competitors.",
				Category: "Marketing",
				Author: "Muhammad Ali",
				Date: "2026-01-20",
				Image: "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "6",
				Title: "Managing Logistics: Overcoming the Cash on Delivery Challenge",
				Excerpt: "High return rates are the enemy of profit. Heres how to optimize your delivery flow.",
				Content: "Logistics in Pakistan is uniquely challenging, particularly due to the dominance of Cash on Delivery (COD) in the retail e-commerce sector. In 2026, managing \"Return to Origin\" (RTO) rates is the most critical task for any profitable brand. Retlcommerce has developed a suite of operational strategies to optimize fulfillment and reduce delivery failures across the country.\n\nThe first step in reducing RTO is customer verification. Many failed deliveries are the result of fake orders or incorrect addresses. Retlcommerce integrates automated WhatsApp confirmation systems that verify every order before it leaves the warehouse. This simple step can reduce your return rate by up to 25%, directly impacting your retail bottom line.\n\nPartnering with multiple couriers is another Retlcommerce best practice. No single courier service is perfect for every city in Pakistan. We help brands build a \"load-balanced\" logistics network that routes shipments based on courier performance in specific regions like Karachi, Islamabad, or Peshawar. Learn more about local logistics trends at [TCS Express Services](https://www.tcs.com.pk/).\n\nTransparency is key to customer satisfaction. In 2026, customers expect real-time tracking and proactive communication. Retlcommerce’s e-commerce solutions provide automated SMS and email updates at every stage of the delivery journey. This reduces \"customer anxiety\" and increases the likelihood that they will be available to pay for their COD order upon arrival.\n\nTo summarize, logistics shouldn’t be an afterthought; it should be a core part of your retail strategy. Retlcommerce provides the technical and operational leverage to turn your supply chain into a competitive advantage. By minimizing returns and maximizing delivery speed, your e-commerce brand can achieve superior profitability in the competitive Pakistani market.",
				Category: "Operations",
				Author: "Aziz un Nisa",
				Date: "2026-01-25",
				Image: "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "7",
				Title: "Sustainability in Fashion: How Pakistani Brands are Adapting",
				Excerpt: "Conscious consumerism is growing. Learn how to implement ethical sourcing.",
				Content: "Sustainability is no longer a niche concept in the Pakistani fashion retail industry; it is a major driver of brand loyalty in 2026. The new generation of consumers is looking for ethical production practices and transparency in the supply chain. Retlcommerce helps e-commerce brands transition to more sustainable models without sacrificing their profit margins.\n\nSustainable sourcing begins at the factory level. Pakistan has an advantage here with its massive organic cotton production. Retlcommerce connects brands with manufacturers that use \"green\" energy and ethical labor practices. This doesn’t just make for a better world; it makes for a better brand story that resonates with global e-commerce audiences. Check out the [Global Organic Textile Standard (GOTS)](https://global-standard.org/).\n\nReducing waste in the production cycle is the next frontier. We encourage our partner brands to adopt \"on-demand\" or small-batch manufacturing. This prevents overstocking and the eventual landfilling of unsold items. Retlcommerce’s data analytics tools help retail brands predict demand more accurately, ensuring they only produce what they can sell.\n\nCircular fashion is also gaining traction. Brands that offer recycling programs or repair services are seeing higher customer retention rates. Retlcommerce consults on how to build these \"closed-loop\" systems into your existing business model. By treating your customers as partners in sustainability, you build a community that is deeply loyal to your retail mission.\n\nIn conclusion, sustainability is a strategic investment in the future of your brand. Retlcommerce provides the expertise to implement these changes authentically and effectively. As the retail e-commerce market in Pakistan matures, brands that prioritize the planet will be the ones that survive and thrive in the long term.",
				Category: "Strategy",
				Author: "Sarah Ahmed",
				Date: "2026-02-01",
				Image: "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "8",
				Title: "Digital Transformation for Traditional Retailers in Karachi",
				Excerpt: "Moving from a physical shop to an omnichannel powerhouse.",
				Content: "Karachi, the commercial hub of Pakistan, is witnessing a massive shift as traditional retailers move online. The markets of Tariq Road and Zainab Market are no longer restricted by physical boundaries. In 2026, \"omnichannel\" retail is the only way to survive. Retlcommerce specializes in taking these established businesses and turning them into digital powerhouses through e-commerce integration.\n\nThe biggest challenge for traditional retailers is inventory synchronization. Selling the last piece of an item in the store while it is still listed on your website is a recipe for disaster. Retlcommerce provides ERP solutions that sync your physical and digital stock in real-time. This ensures a seamless experience for both your walk-in and online customers.\n\nDigital marketing is the second pillar of transformation. Many traditional retailers rely on foot traffic, but in 2026, \"digital foot traffic\" is just as valuable. Retlcommerce builds targeted advertising campaigns that drive local Karachi customers to your store and national customers to your e-commerce site. For more on Pakistan’s digital growth, visit [The Pakistan Software Houses Association (P@SHA)](https://pasha.org.pk/).\n\nCustomer data is the most valuable asset you can have. Traditional shops often lose touch with their customers once they leave the store. Retlcommerce’s solutions capture data at every touchpoint, allowing you to run personalized email and SMS campaigns that keep your brand top-of-mind. This transformation from a \"shop\" to a \"data-driven brand\" is where the real growth happens.\n\nUltimately, digital transformation is about future-proofing your business. Retlcommerce provides the tools and the strategy to ensure that your heritage brand thrives in the modern age. We don’t just build websites; we rebuild your entire retail operation for the digital-first world of 2026.",
				Category: "E-commerce",
				Author: "Ali Khan",
				Date: "2026-02-05",
				Image: "https://images.unsplash.com/photo-1513828583688-c52646db42da?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "9",
				Title: "Customer Psychology: Understanding the Pakistani Shopper",
				Excerpt: "Trust and relationship management are the keys to long-term loyalty.",
				Content: "The Pakistani shopper is unique in their behavior and expectations. In 2026, successful retail brands must understand the underlying psychology of their audience to drive conversions. Trust is the primary currency in the local market. Retlcommerce helps e-commerce brands build this trust through transparent communication and localized user experiences.\n\nOne of the most distinct traits is the desire for \"conversational commerce.\" Many Pakistani shoppers want to chat with a representative before they hit the \"buy\" button. This is why Retlcommerce integrates WhatsApp and live chat features into every retail platform we build. This personal touch reduces friction and mirrors the \"shopkeeper interaction\" that consumers are used to in physical markets.\n\nPrice sensitivity vs. value perception is another critical factor. While discounts are popular, the 2026 consumer is increasingly focused on the \"cost-per-wear\" or long-term value. Retlcommerce consults on how to position your products to emphasize quality and longevity, allowing you to charge a premium over generic competitors. Learn about consumer trends at [Nielsen - Retail Insights](https://www.nielsen.com/solutions/retail-measurement/).\n\nSocial proof is extremely powerful in Pakistan. People trust what their friends, family, and favorite influencers are saying more than what the brand says about itself. Retlcommerce builds review and testimonial systems that make it easy for satisfied customers to share their experiences. This organic word-of-mouth is the most effective marketing tool for any e-commerce venture.\n\nIn summary, understanding the mind of the shopper is the first step in building a successful retail brand. Retlcommerce provides the insights and the technical tools to align your business with the psychological needs of the Pakistani market. By focusing on trust, conversation, and value, your e-commerce brand can achieve market leadership.",
				Category: "Marketing",
				Author: "Muhammad Ali",
				Date: "2026-02-10",
				Image: "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "10",
				Title: "The Importance of Professional Logo Design for Startups",
				Excerpt: "Your logo is your brand first handshake. Dont let it be a weak one.",
				Content: "A logo is often the first thing a potential customer sees, and in the crowded retail e-commerce market of 2026, first impressions are everything. A professional logo communicates credibility, quality, and personality. Retlcommerce’s design team understands that a logo is more than just an image; it is the cornerstone of your entire brand identity.\n\nGeneric or \"do-it-yourself\" logos can actually harm your brand by signaling a lack of professionalism. At Retlcommerce, we create custom visual identities that are unique to your brand’s mission. We focus on typography, color theory, and symbolism to ensure your logo is memorable and stands out on everything from a mobile app icon to a physical billboard.\n\nScalability in design is another often-overlooked factor. A logo that looks good on a business card might not work on a small Instagram profile picture or a large shipping box. Retlcommerce provides responsive logo systems that maintain their impact across all digital and physical mediums. For branding inspiration, visit [Behance - Branding Showcase](https://www.behance.net/search/projects?search=branding).\n\nYour logo is a long-term investment. While trends come and go, a well-designed logo should feel timeless. Retlcommerce avoids \"trendy\" designs in favor of strategic visuals that will represent your retail brand for decades. This consistency is what eventually turns a startup into a legacy brand in the eyes of the consumer.\n\nTo conclude, don’t neglect your brand’s visual foundation. A professional logo is the \"handshake\" that starts the customer relationship. Retlcommerce provides the creative and strategic expertise to ensure that your retail e-commerce brand is represented by world-class design from day one.",
				Category: "Design",
				Author: "Sarah Ahmed",
				Date: "2026-02-15",
				Image: "https://images.unsplash.com/photo-1626785774573-4b799315345d?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "11",
				Title: "Scaling Your Brand: From Local Markets to Global E-commerce",
				Excerpt: "Pakistan has the potential to export high-quality goods via Amazon and Etsy.",
				Content: "The potential for Pakistani brands to reach a global audience has never been greater than in 2026. With high-quality textile, leather, and artisanal products, local founders are uniquely positioned to compete on international platforms like Amazon and Etsy. Retlcommerce specializes in the \"export-ready\" retail strategy, helping brands scale beyond national borders.\n\nInternational scaling requires a complete overhaul of your operational standards. From sizing charts to international shipping compliance, every detail matters. Retlcommerce consults on how to adapt your retail brand for global tastes while maintaining the \"Made in Pakistan\" pride that is becoming a mark of quality. Check out [Etsy’s Global Seller Policy](https://www.etsy.com/legal/sellers/).\n\nLogistics and customs are the biggest hurdles for international e-commerce. Retlcommerce works with global logistics partners to provide reliable shipping solutions from Karachi to the world. We handle the technical integration for international payment processing, ensuring you can accept payments in USD, EUR, or GBP without any friction.\n\nMarketing to a global audience requires a different set of tools. We help brands build international-standard SEO and social media campaigns that resonate with Western consumers. Retlcommerce’s data-driven approach ensures that your marketing budget is spent where it will have the most impact, whether it’s targeting a niche in London or a broad market in New York.\n\nIn summary, the world is waiting for your brand. Retlcommerce provides the roadmap to take your retail e-commerce business from a local favorite to a global success. Our mission is to put Pakistani brands on the map by providing the world-class strategic and technical support they deserve.",
				Category: "Strategy",
				Author: "Muhammad Ali",
				Date: "2026-02-20",
				Image: "https://images.unsplash.com/photo-1523474253046-2cd2c78a9db1?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "12",
				Title: "ERP Systems: Why Your Brand Needs Automation in 2026",
				Excerpt: "Manual spreadsheets are the bottleneck of your growth.",
				Content: "As your retail brand scales, manual processes become the biggest obstacle to profitability. In 2026, spreadsheets are no longer sufficient for managing a multi-channel e-commerce operation. Retlcommerce’s upcoming ERP solution is designed to automate the heavy lifting, allowing you to focus on high-level strategy and growth.\n\nAn ERP (Enterprise Resource Planning) system integrates your entire business—from inventory management to financial reporting. Retlcommerce’s platform provides real-time visibility into your stock levels across multiple warehouses and sales channels. This prevents the \"stock-out\" issues that frustrate customers and kill e-commerce conversion rates.\n\nAutomation reduces human error, which is the leading cause of fulfillment delays. By automating order processing and shipping label generation, Retlcommerce helps you get products to your customers faster and more accurately. For insights on ERP benefits, visit [Oracle - What is ERP?](https://www.oracle.com/erp/what-is-erp/).\n\nFinancial tracking is the final benefit. A unified ERP system provides clear insights into your profit margins, overheads, and customer acquisition costs. Retlcommerce’s analytics dashboard turns this data into actionable insights, helping you make better decisions about where to invest your retail brand’s resources.\n\nTo wrap up, an ERP is not just software; it is the \"brain\" of your business. Retlcommerce provides the technical infrastructure that allows your retail e-commerce brand to operate with the efficiency of a global giant. Don’t let manual bottlenecks hold you back in the fast-paced market of 2026.",
				Category: "E-commerce",
				Author: "Ali Khan",
				Date: "2026-02-25",
				Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "13",
				Title: "Influencer Marketing in Pakistan: Choosing the Right Voice",
				Excerpt: "Follower count isnt everything. Engagement and niche relevance matter more.",
				Content: "Influencer marketing has evolved from a simple shout-out to a complex strategic pillar in the Pakistani retail landscape. In 2026, consumers are hyper-aware of \"paid partnerships\" and are looking for genuine recommendations. Retlcommerce specializes in the \"Influence & Trust\" model, focusing on long-term partnerships rather than one-off ads.\n\nThe biggest mistake brands make is chasing follower counts. A million followers mean nothing if the engagement is fake or irrelevant to your product. Retlcommerce identifies micro-influencers who have a dedicated and trusting audience. These creators often have 10x higher conversion rates for retail e-commerce brands than high-profile celebrities. For a deeper look at global trends, see [Influencer Marketing Hub](https://influencermarketinghub.com/).\n\nContent collaboration is key. We work with influencers to create content that adds value to the viewer while subtly integrating your brand. Whether it’s a tutorial, an unboxing, or a \"day-in-the-life\" video, Retlcommerce ensures the messaging aligns with your brand values and drives measurable results for your e-commerce platform.\n\nTracking ROI (Return on Investment) is the final piece of the puzzle. Most brands in Pakistan don’t know if their influencer spend is actually working. Retlcommerce’s data tools provide tracking codes and custom landing pages to measure exactly how many sales each influencer drives. This accountability ensures that your retail marketing budget is always working for you.\n\nIn conclusion, influencer marketing is about building relationships, not just buying ads. Retlcommerce provides the strategic insight to help you choose the right voices and the technical tools to track your success. In 2026, the brands that master influencer collaboration will be the ones that dominate the retail e-commerce space.",
				Category: "Marketing",
				Author: "Sarah Ahmed",
				Date: "2026-03-01",
				Image: "https://images.unsplash.com/photo-1557804506-669a67965ba0?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID: "14",
				Title: "Retail Store Design: Creating an Experience for Customers",
				Excerpt: "Why your physical outlet needs to be more than just a place to buy things.",
				Content: "Despite the rise of e-commerce, physical retail remains a powerful touchpoint for brands in Pakistan. In 2026, however, the role of the store has changed. It is no longer just a place to stock items; it is a \"brand sanctuary\" where customers go to experience your world. Retlcommerce consults on physical store design that complements your digital presence.\n\nThe layout of your store should guide the customer on a journey. From the \"power wall\" near the entrance to the strategic placement of the checkout counter, every inch should be designed for engagement. Retlcommerce’s retail consultants focus on \"experiential retail,\" integrating technology like digital kiosks and QR-code-based product lookups into the physical space. Read more about retail design at [VMSD Magazine](https://www.vmsd.com/).\n\nSensory marketing is another powerful tool. The lighting, music, and even the scent of your store can influence how long a customer stays and how much they spend. Retlcommerce helps you design a physical environment that reinforces your brand identity and creates a positive emotional connection with your retail audience.\n\nIntegrating your physical and digital store is the final step. Retlcommerce’s \"Click & Collect\" and \"In-Store Returns\" systems bridge the gap between the two worlds. This provides a level of convenience that modern Pakistani shoppers expect and ensures that your brand provides a unified experience across all channels.\n\nIn summary, your physical store is your most powerful billboard. Retlcommerce provides the strategic vision to turn your outlet into an experience that drives both foot traffic and online sales. In the competitive retail world of 2026, a well-designed store is a vital part of your brand’s overall e-commerce success.",
				Category: "Operations",
				Author: "Muhammad Ali",
				Date: "2026-03-05",
				Image: "https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?auto=format&fit=crop&q=80&w=1200",
			},
		},
		Team: []models.TeamMember{
			{
				ID: "TM-001",
				Name: "Muhammad Ali",
				Position: "Managing Director & CEO",
				Bio: "Visionary leader driving the next decade of retail innovation in Pakistan.",
				Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=400",
				Email: "muhammad.ali@retlcommerce.com",
				Linkedin: "https://www.linkedin.com/in/muhammad-ali-632860338/",
				Whatsapp: "+92 300 1234567",
				Twitter: "https://x.com/retlcommerce",
				Facebook: "https://facebook.com/retlcommerce",
				Instagram: "https://instagram.com/retlcommerce",
				Tiktok: "https://tiktok.com/@retlcommerce",
				Role: models.RoleDirector,
			},
			{
				ID: "TM-002",
				Name: "Aziz un Nisa",
				Position: "Strategic Operations Director",
				Bio: "Logistics and sourcing expert managing complex supply chains for high-growth brands.",
				Image: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=400",
				Email: "aziz.nisa@retlcommerce.com",
				Linkedin: "https://www.linkedin.com/in/aziz-un-nisa-7ab9512b3/",
				Whatsapp: "+92 300 7654321",
				Twitter: "https://x.com/aziznisa",
				Facebook: "https://facebook.com/retlcommerce",
				Instagram: "https://instagram.com/retlcommerce",
				Tiktok: "https://tiktok.com/@retlcommerce",
				Role: models.RoleDirector,
			},
		},
		Tasks: []models.Task{
			{
				ID: "TSK-001",
				Title: "Review Website Admin Logs",
				Description: "Check for security updates and performance bottlenecks on the core platform.",
				AssignedToID: "TM-001",
				Category: "Website Admin",
				Status: models.TaskInProgress,
				Priority: models.PriorityHigh,
				DueDate: "2026-03-10",
				CreatedAt: now,
			},
			{
				ID: "TSK-002",
				Title: "Inquiry Handling: Project X",
				Description: "Respond to the high-priority enterprise inquiry from the Karachi textile hub.",
				AssignedToID: "TM-002",
				Category: "Inquiry Handling",
				Status: models.TaskPending,
				Priority: models.PriorityCritical,
				DueDate: "2026-03-08",
				CreatedAt: now,
			},
		},
		Testimonials: []models.Testimonial{},
		Submissions: []models.ContactSubmission{},
	}
}
