package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

const propertyColumns = `id, mls_number, item_url, photo_url,
	address_full, city, state, postal_code,
	list_price, close_price,
	beds, baths, living_area, lot_size, year_built,
	latitude, longitude, waterfront, entry_level, property_sub_type,
	standard_status, days_on_market,
	list_date, close_date, first_seen_at, updated_at`

// Property queries.
const (
	queryUpsertProperty = `
		INSERT INTO properties (
			mls_number, item_url, photo_url,
			address_full, city, state, postal_code,
			list_price, close_price,
			beds, baths, living_area, lot_size, year_built,
			latitude, longitude, waterfront, entry_level, property_sub_type,
			standard_status, days_on_market,
			list_date, close_date, first_seen_at, updated_at
		) VALUES (
			@mls_number, @item_url, @photo_url,
			@address_full, @city, @state, @postal_code,
			@list_price, @close_price,
			@beds, @baths, @living_area, @lot_size, @year_built,
			@latitude, @longitude, @waterfront, @entry_level, @property_sub_type,
			@standard_status, @days_on_market,
			@list_date, @close_date, now(), now()
		)
		ON CONFLICT (mls_number) DO UPDATE SET
			item_url = EXCLUDED.item_url,
			photo_url = EXCLUDED.photo_url,
			address_full = EXCLUDED.address_full,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			postal_code = EXCLUDED.postal_code,
			list_price = EXCLUDED.list_price,
			close_price = EXCLUDED.close_price,
			beds = EXCLUDED.beds,
			baths = EXCLUDED.baths,
			living_area = EXCLUDED.living_area,
			lot_size = EXCLUDED.lot_size,
			year_built = EXCLUDED.year_built,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			waterfront = EXCLUDED.waterfront,
			entry_level = EXCLUDED.entry_level,
			property_sub_type = EXCLUDED.property_sub_type,
			standard_status = EXCLUDED.standard_status,
			days_on_market = EXCLUDED.days_on_market,
			list_date = EXCLUDED.list_date,
			close_date = EXCLUDED.close_date,
			updated_at = now()
		RETURNING id, first_seen_at, updated_at`

	queryGetPropertyByMLS = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE mls_number = $1`

	queryGetPropertyByID = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1`

	queryListCities = `
		SELECT DISTINCT city FROM properties
		WHERE city <> ''
		ORDER BY city`

	queryMarketAggregates = `
		SELECT
			COUNT(*) FILTER (WHERE standard_status = 'active') AS active_count,
			COUNT(*) FILTER (
				WHERE standard_status = 'closed'
				AND close_date >= now() - make_interval(days => $2)
			) AS closed_count,
			COALESCE(AVG(days_on_market) FILTER (
				WHERE standard_status = 'closed'
				AND close_date >= now() - make_interval(days => $2)
			), 0) AS avg_dom,
			COALESCE(AVG(close_price / NULLIF(list_price, 0) * 100) FILTER (
				WHERE standard_status = 'closed'
				AND close_price IS NOT NULL
				AND close_date >= now() - make_interval(days => $2)
			), 0) AS sp_lp_ratio
		FROM properties
		WHERE lower(city) = lower($1)`
)

// CMA session queries.
const (
	queryCreateCMASession = `
		INSERT INTO cma_sessions (
			id, name, subject_id, contact_name, notes, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING created_at, updated_at`

	queryInsertCMAComparable = `
		INSERT INTO cma_comparables (
			id, session_id, property_id, price, grade,
			use_custom_weight, custom_weight, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	queryGetCMASession = `
		SELECT id, name, subject_id, contact_name, notes, status, snapshot, created_at, updated_at
		FROM cma_sessions
		WHERE id = $1`

	queryListCMAComparables = `
		SELECT id, session_id, property_id, price, grade,
			use_custom_weight, custom_weight, position
		FROM cma_comparables
		WHERE session_id = $1
		ORDER BY position`

	queryListCMASessions = `
		SELECT id, name, subject_id, contact_name, notes, status, snapshot, created_at, updated_at
		FROM cma_sessions
		ORDER BY updated_at DESC
		LIMIT $1`

	queryUpdateCMAComparable = `
		UPDATE cma_comparables SET
			grade = $2,
			use_custom_weight = $3,
			custom_weight = $4
		WHERE id = $1`

	queryUpdateCMASessionSnapshot = `
		UPDATE cma_sessions SET
			status = $2,
			snapshot = $3,
			updated_at = now()
		WHERE id = $1`

	queryDeleteCMASession = `DELETE FROM cma_sessions WHERE id = $1`
)

// Agent queries.
const (
	queryCreateAgent = `
		INSERT INTO agents (id, name, email, phone, license_number, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at`

	queryGetAgent = `
		SELECT id, name, email, phone, license_number, active, created_at
		FROM agents
		WHERE id = $1`

	queryListAgents = `
		SELECT id, name, email, phone, license_number, active, created_at
		FROM agents
		WHERE ($1::bool = false OR active)
		ORDER BY name`

	querySetAgentActive = `UPDATE agents SET active = $2 WHERE id = $1`

	queryLeastLoadedAgent = `
		SELECT a.id, a.name, a.email, a.phone, a.license_number, a.active, a.created_at
		FROM agents a
		LEFT JOIN leads l ON l.agent_id = a.id
		WHERE a.active
		GROUP BY a.id
		ORDER BY COUNT(l.id) ASC, a.created_at ASC
		LIMIT 1`
)

// Lead queries.
const (
	queryCreateLead = `
		INSERT INTO leads (id, agent_id, property_id, name, email, phone, message, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING created_at`

	queryListLeads = `
		SELECT id, agent_id, property_id, name, email, phone, message, source, created_at
		FROM leads
		WHERE ($1::uuid IS NULL OR agent_id = $1)
		ORDER BY created_at DESC
		LIMIT $2`

	queryAssignLead = `UPDATE leads SET agent_id = $2 WHERE id = $1`
)

// Saved search queries.
const (
	queryCreateSavedSearch = `
		INSERT INTO saved_searches (id, name, contact_email, filters, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING created_at`

	queryGetSavedSearch = `
		SELECT id, name, contact_email, filters, created_at
		FROM saved_searches
		WHERE id = $1`

	queryListSavedSearches = `
		SELECT id, name, contact_email, filters, created_at
		FROM saved_searches
		WHERE ($1 = '' OR contact_email = $1)
		ORDER BY created_at DESC`

	queryDeleteSavedSearch = `DELETE FROM saved_searches WHERE id = $1`
)

// Market snapshot queries.
const (
	queryInsertMarketSnapshot = `
		INSERT INTO market_snapshots (
			id, city, avg_dom, sp_lp_ratio, months_supply, absorption_rate,
			heat_score, heat_label, active_count, closed_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING created_at`

	queryLatestMarketSnapshot = `
		SELECT id, city, avg_dom, sp_lp_ratio, months_supply, absorption_rate,
			heat_score, heat_label, active_count, closed_count, created_at
		FROM market_snapshots
		WHERE lower(city) = lower($1)
		ORDER BY created_at DESC
		LIMIT 1`

	queryListMarketSnapshots = `
		SELECT id, city, avg_dom, sp_lp_ratio, months_supply, absorption_rate,
			heat_score, heat_label, active_count, closed_count, created_at
		FROM market_snapshots
		WHERE lower(city) = lower($1)
		ORDER BY created_at DESC
		LIMIT $2`
)

// System queries.
const querySystemState = `
	SELECT
		(SELECT COUNT(*) FROM properties) AS properties_total,
		(SELECT COUNT(*) FROM properties WHERE standard_status = 'active') AS properties_active,
		(SELECT COUNT(*) FROM cma_sessions) AS cma_sessions_total,
		(SELECT COUNT(*) FROM leads) AS leads_total,
		(SELECT COUNT(*) FROM leads WHERE agent_id IS NULL) AS leads_unassigned,
		(SELECT COUNT(*) FROM agents WHERE active) AS agents_active,
		(SELECT COUNT(*) FROM saved_searches) AS saved_searches_total,
		(SELECT COUNT(*) FROM market_snapshots) AS snapshots_total`

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE ($1 = '' OR job_name = $1)
		ORDER BY started_at DESC
		LIMIT $2`
)
