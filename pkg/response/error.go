package response

const (
	ServerError    = "Something went wrong. Please try again."
	BadRequestBody = "Incorrect request body"
	//----------------------
	AuthRequired    = "Authentication required. Please sign in."
	SessionExpired  = "Session expired. Please sign in again."
	InvalidSession  = "Invalid session. Please sign in again."
	AccountNotFound = "Account not found. Please sign in again."
	AuthError       = "Authentication error."
	//----------------------
	InvalidEmailOrPassword = "Invalid email or password."
	EmailAlreadyExist      = "An account with this email already exists."
	//----------------------
	AlreadyInWatchlist = "This title is already in your watchlist."
	//----------------------
	ValidationFailed = "Validation failed."
	CatalogError     = "Catalog is unavailable. Please try again later."
	TooManyRequests  = "Too many requests. Please try again later."
	//----------------------
	AccountCreated     = "Account created successfully."
	SignedIn           = "Signed in successfully."
	SignedOut          = "Signed out successfully."
	AuthenticatedUser  = "Authenticated user retrieved."
	ProfileRetrieved   = "Profile retrieved."
	ProfileUpdated     = "Profile updated."
	WatchlistRetrieved = "Watchlist retrieved."
	WatchlistAdded     = "Added to watchlist."
	WatchlistRemoved   = "Removed from watchlist."
	CatalogRetrieved   = "Catalog retrieved."
)
