package constant

// AdminAuthenticatedSentinel is the raw response body the front end watches
// for to switch into the admin dashboard. It is never wrapped in HTML.
const AdminAuthenticatedSentinel = "ADMIN_AUTHENTICATED"

// AdminAccessAcknowledgement is what gets written to the conversation log in
// place of the credential pair when the admin probe matches.
const AdminAccessAcknowledgement = "I understand you're asking about administrative access. Let me check that for you."

// SystemPromptHeader opens every freeform completion prompt. Curated
// reference data and the bounded conversation context are appended after it.
const SystemPromptHeader = `You are BAAC (Barangay Amungan Assistant Chatbot), an assistant chatbot for Barangay Amungan, Iba, Zambales.
Always provide helpful and informative responses. Format your response in a clear and professional manner.
Use the following reference data when it is relevant to the question:`

// Reference lookup reply templates. The %s verbs take, in order, the
// reference token and the comma-joined document type list where present.
const (
	ReferenceApprovedTemplate = `<div class="ai-response"><p>Good news! Your document request <strong>%s</strong> (%s) has been <strong>Approved</strong>. You may claim it at the barangay hall during office hours. Please bring a valid ID.</p></div>`

	ReferenceRejectedTemplate = `<div class="ai-response"><p>We're sorry, but your document request <strong>%s</strong> (%s) has been <strong>Rejected</strong>. Please visit the barangay hall for more details or submit a new request.</p></div>`

	ReferenceClaimedTemplate = `<div class="ai-response"><p>Our records show that your document request <strong>%s</strong> (%s) was already <strong>Claimed</strong> on %s. If you believe this is an error, please contact the barangay office.</p></div>`

	ReferencePendingTemplate = `<div class="ai-response"><p>Your document request <strong>%s</strong> (%s) is currently <strong>%s</strong>. We will process it as soon as possible. Please check back later or wait for an update.</p></div>`

	ReferenceNotFoundTemplate = `<div class="ai-response"><p>I could not find a document request matching <strong>%s</strong>. Please double-check the reference number on your submission receipt and try again.</p></div>`
)

// DocumentInquiryResponse answers a generic document question before a
// specific type has been named.
const DocumentInquiryResponse = `<div class="ai-response" style="text-align: justify; line-height: 1.6;">
<p>Greetings! To assist you with your document request, I need some additional information. Please provide the following details:</p>
<div class="requirements" style="margin: 15px 0; padding-left: 20px;">
<p><strong>1. Document needed:</strong><br>
<span style="color: #666;">(e.g., Barangay Clearance, Certificate of Indigency, etc.)</span></p>
<p><strong>2. Purpose of the document:</strong><br>
<span style="color: #666;">(e.g., School enrollment, employment, financial assistance, etc.)</span></p>
<p><strong>3. Residency status:</strong><br>
<span style="color: #666;">Are you a resident of Barangay Amungan?</span></p>
<p><strong>4. Full name:</strong></p>
<p><strong>5. Address in Barangay Amungan:</strong></p>
<p><strong>6. Contact number:</strong><br>
<span style="color: #666;">(optional but helpful)</span></p>
</div>
<p>Once I have this information, I can guide you on the specific requirements and procedures for obtaining your requested document. Your cooperation in providing these details will help me serve you more efficiently.</p>
</div>`

// AuthRequiredResponse is returned when an unauthenticated citizen makes a
// direct document request. The %s verb takes the resolved document type.
const AuthRequiredResponse = `<div class="ai-response"><p>I'd be happy to help you request a <strong>%s</strong>. To proceed, please log in or create an account first so we can keep track of your request and notify you when it's ready.</p></div>`

// FormCTAResponse invites an authenticated citizen to open the submission
// form for the resolved document type.
const FormCTAResponse = `<div class="ai-response"><p>Great! I can help you request a <strong>%s</strong>. Please click the button below to open the request form and fill in your details.</p></div>`

// FreeformResponseWrapper wraps generated text the same way every curated
// reply is wrapped.
const FreeformResponseWrapper = `<div class="ai-response" style="text-align: justify; line-height: 1.6;"><p>%s</p></div>`
