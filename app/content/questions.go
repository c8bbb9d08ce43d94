// Package content holds the static bilingual database-theory Q&A served
// under /questions/. The questions are phrased in German, the section
// titles in English; the text is data, not logic.
package content

// QA is one question with its prepared answer.
type QA struct {
	Question string
	Answer   string
}

// Section groups related questions under a URL slug.
type Section struct {
	Slug  string
	Title string
	Items []QA
}

// Sections returns all Q&A sections in display order.
func Sections() []Section {
	return sections
}

// BySlug returns the section registered under slug.
func BySlug(slug string) (Section, bool) {
	for _, s := range sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

var sections = []Section{
	{
		Slug:  "general_database_questions",
		Title: "General Database Questions",
		Items: []QA{
			{
				Question: "1- Welche Unterschiede sehen Sie zwischen relationalen und nicht-relationalen Datenbanken?",
				Answer: "Relationale Datenbanken sind in Tabellen aus Zeilen und Spalten organisiert; jede Tabelle " +
					"repräsentiert eine Entität, jede Zeile einen Datensatz. Sie verwenden ein festes Schema, das vor der " +
					"Speicherung definiert wird, und sichern die Datenintegrität über Constraints (NOT NULL, UNIQUE, " +
					"FOREIGN KEY). Ihre Stärke liegt in Beziehungen zwischen Tabellen über Primary und Foreign Keys, die " +
					"komplexe Abfragen über mehrere Tabellen ermöglichen — etwa eine Bestellung, die mit einem Kunden und " +
					"den bestellten Produkten verknüpft ist. Transaktionen garantieren die ACID-Eigenschaften. Typische " +
					"Beispiele: MySQL, PostgreSQL, Oracle, Microsoft SQL Server.\n\n" +
					"Nicht-relationale Datenbanken (NoSQL) haben eine flexible Struktur und verwenden verschiedene " +
					"Datenmodelle: dokumentenorientiert (MongoDB), Schlüssel-Wert (Redis), spaltenbasiert (Cassandra) oder " +
					"Graph (Neo4j). Sie sind schemalos oder nutzen ein dynamisches Schema und skalieren horizontal über " +
					"viele Server. Einige verzichten zugunsten von Skalierbarkeit und Verfügbarkeit auf strikte " +
					"ACID-Eigenschaften (BASE: Basically Available, Soft state, Eventually consistent).\n\n" +
					"Zusammenfassung: Relationale Datenbanken sind ideal für strukturierte Daten, starke Datenintegrität " +
					"und komplexe Abfragen; NoSQL-Datenbanken für unstrukturierte Daten, variable Modelle und hohe " +
					"Skalierbarkeit.",
			},
			{
				Question: "2- Unter welchen Umständen würden Sie eine relationale Datenbank gegenüber einer nicht-relationalen bevorzugen?",
				Answer: "Datenintegrität und Konsistenz: Wenn die Anwendung strikte Integrität erfordert, sind relationale " +
					"Datenbanken zu bevorzugen, da sie ACID-Eigenschaften gewährleisten — etwa Bankensysteme und " +
					"Buchhaltungssoftware.\n\n" +
					"Komplexe Abfragen und Transaktionen: SQL ist leistungsstark für Joins und Aggregationen über mehrere " +
					"Tabellen, z.B. E-Commerce-Plattformen mit Berichten über Kundenbestellungen, Produktbestände und " +
					"Verkaufsanalysen.\n\n" +
					"Strukturierte Daten: Sind die Beziehungen zwischen den Entitäten gut definiert, ist ein festes Schema " +
					"die natürliche Wahl, z.B. CRM-Systeme.\n\n" +
					"Datensicherheit und Compliance: Robuste Zugriffskontrollen und ein reifes Ökosystem an Backup-, " +
					"Wiederherstellungs- und Monitoring-Tools sprechen in regulierten Umgebungen (GDPR, HIPAA, SOX) für " +
					"relationale Systeme.",
			},
			{
				Question: "3- Können Sie mir die ACID-Eigenschaften erklären und warum diese in Datenbanken wichtig sind?",
				Answer: "Atomicity: Alle Operationen einer Transaktion bilden eine unteilbare Einheit — entweder werden alle " +
					"abgeschlossen oder keine. Schlägt eine Banküberweisung nach der Abbuchung fehl, wird die gesamte " +
					"Transaktion rückgängig gemacht.\n\n" +
					"Consistency: Eine Transaktion überführt die Datenbank von einem konsistenten Zustand in einen anderen; " +
					"Constraints, Trigger und Validierungen müssen eingehalten werden.\n\n" +
					"Isolation: Parallele Transaktionen beeinflussen sich nicht gegenseitig. Kaufen zwei Kunden gleichzeitig " +
					"denselben Artikel, wird er nicht doppelt verkauft.\n\n" +
					"Durability: Bestätigte Transaktionen bleiben auch bei Systemausfällen erhalten, da Änderungen auf " +
					"nichtflüchtigen Speicher geschrieben werden.\n\n" +
					"Diese Eigenschaften sichern Datenintegrität, Fehlertoleranz, Parallelität und Verlässlichkeit — " +
					"entscheidend in allen kritischen Anwendungen.",
			},
			{
				Question: "4- Was verstehen Sie unter dem Konzept der Normalisierung, und wann halten Sie eine Denormalisierung für sinnvoll?",
				Answer: "Normalisierung minimiert Datenredundanzen und sichert die Integrität, indem große Tabellen in " +
					"kleinere, verknüpfte Tabellen aufgeteilt werden, sodass jede Information nur einmal gespeichert wird. " +
					"Kundendaten stehen zum Beispiel in einer eigenen Tabelle statt in jeder Bestellzeile wiederholt zu " +
					"werden. Das spart Speicher, verringert Inkonsistenzen und erleichtert die Wartung.\n\n" +
					"Denormalisierung ist das bewusste Einführen von Redundanz, um die Leseleistung zu verbessern — Daten, " +
					"die normalerweise getrennt liegen, werden zusammengeführt, um Joins zu vermeiden. Sinnvoll ist das in " +
					"Reporting- und Data-Warehouse-Systemen, wo schnelle Lesezugriffe wichtiger sind als Speichereffizienz, " +
					"oder wenn komplexe Joins in sehr großen Datenbanken die Abfrageleistung beeinträchtigen.",
			},
		},
	},
	{
		Slug:  "sql_database_queries",
		Title: "SQL and Database Queries",
		Items: []QA{
			{
				Question: "1- Wie würden Sie eine SQL-Abfrage optimieren, die zu langsam ist?",
				Answer: "1. Indizes verwenden: Spalten, die häufig in WHERE-, JOIN- und ORDER BY-Klauseln vorkommen, " +
					"indizieren.\n\n" +
					"2. SELECT * vermeiden: Nur die benötigten Spalten abrufen, um I/O zu reduzieren.\n\n" +
					"3. Joins statt Subqueries: Joins sind in der Regel effizienter als Subqueries in WHERE-Klauseln.\n\n" +
					"4. Abfrageausführungsplan analysieren: Engpässe wie Full Table Scans identifizieren und gezielt " +
					"Indizes ergänzen.\n\n" +
					"5. Große Tabellen partitionieren: Eine Bestelltabelle etwa nach Jahren aufteilen, sodass Abfragen nur " +
					"die relevante Partition durchsuchen.\n\n" +
					"6. Konfiguration und Hardware optimieren: Cache-Größen, Speicherzuweisungen und Festplatten-I/O " +
					"anpassen.\n\n" +
					"7. Materialized Views: Ergebnisse komplexer Abfragen vorspeichern, statt sie bei jeder Ausführung neu " +
					"zu berechnen.",
			},
			{
				Question: "2- Können Sie die verschiedenen JOIN-Typen in SQL erklären und wann Sie diese einsetzen würden (INNER, LEFT, RIGHT, FULL)?",
				Answer: "INNER JOIN: Gibt nur Datensätze zurück, die in beiden Tabellen übereinstimmende Werte haben — " +
					"verwenden, wenn nur die Schnittmenge benötigt wird.\n\n" +
					"LEFT JOIN (LEFT OUTER JOIN): Alle Datensätze der linken Tabelle plus Übereinstimmungen der rechten; " +
					"ohne Übereinstimmung wird NULL zurückgegeben. Verwenden, wenn alle linken Datensätze erhalten bleiben " +
					"sollen — etwa alle Kunden, auch ohne Bestellungen.\n\n" +
					"RIGHT JOIN (RIGHT OUTER JOIN): Spiegelbildlich — alle Datensätze der rechten Tabelle plus " +
					"Übereinstimmungen der linken.\n\n" +
					"FULL JOIN (FULL OUTER JOIN): Alle Datensätze beider Tabellen, unabhängig von Übereinstimmungen; " +
					"fehlende Seiten werden mit NULL aufgefüllt.",
			},
			{
				Question: "3- Wie würden Sie eine komplexe Abfrage schreiben, die Daten aus mehreren Tabellen kombiniert und filtert?",
				Answer: "Eine komplexe Abfrage kombiniert Joins, Aggregatausdrücke und Filterbedingungen. Beispiel über die " +
					"Tabellen Kunden, Bestellungen, Bestellpositionen und Produkte: Kundenname, Bestelldatum, Produktname, " +
					"Menge und Gesamtpreis anzeigen, aber nur Positionen über 100 Euro:\n\n" +
					"SELECT k.name, b.bestelldatum, p.name, bp.menge, (bp.menge * bp.preis) AS gesamtpreis\n" +
					"FROM Kunden k\n" +
					"JOIN Bestellungen b ON k.kunden_id = b.kunden_id\n" +
					"JOIN Bestellpositionen bp ON b.bestellnummer = bp.bestellnummer\n" +
					"JOIN Produkte p ON bp.produkt_id = p.produkt_id\n" +
					"WHERE (bp.menge * bp.preis) > 100\n" +
					"ORDER BY b.bestelldatum DESC;\n\n" +
					"Die Joins verbinden die vier Tabellen, die WHERE-Klausel filtert die Positionen nach dem berechneten " +
					"Gesamtpreis, und ORDER BY sortiert die Ergebnisse absteigend nach Datum.",
			},
			{
				Question: "4- Wie gehen Sie mit Deadlocks in einer Datenbank um?",
				Answer: "Ein Deadlock tritt auf, wenn Transaktionen gegenseitig auf Ressourcen warten, die die jeweils " +
					"andere hält. Strategien:\n\n" +
					"Ursachenanalyse: Beteiligte Transaktionen identifizieren und Abfragen so optimieren, dass nur die " +
					"notwendigen Daten gesperrt werden.\n\n" +
					"Isolationsebenen: Das Isolationslevel senken oder optimistisches Sperren verwenden, bei dem erst in " +
					"der Commit-Phase gesperrt wird.\n\n" +
					"Konsistente Sperrreihenfolge: Alle Transaktionen greifen in derselben Reihenfolge auf Ressourcen zu; " +
					"Transaktionen kurz halten.\n\n" +
					"Timeouts und Erkennung: Zeitüberschreitungen für Transaktionen setzen; die automatische " +
					"Deadlock-Erkennung des Datenbanksystems nutzen.\n\n" +
					"Wiederholung: Eine wegen Deadlock abgebrochene Transaktion sollte die Anwendung erneut versuchen.",
			},
		},
	},
	{
		Slug:  "database_design_architecture",
		Title: "Database Design and Architecture",
		Items: []QA{
			{
				Question: "1- Wie würden Sie eine Datenbank für eine Anwendung entwerfen, die eine große Anzahl von Lese- und Schreiboperationen bewältigen muss?",
				Answer: "Horizontale Skalierung (Sharding): Die Datenbank in kleinere Teile aufteilen, die auf verschiedenen " +
					"Servern liegen, mit einer Strategie, die die Last gleichmäßig verteilt.\n\n" +
					"Caching: Häufig abgefragte Daten mit Redis oder Memcached im Speicher halten, um direkte " +
					"Datenbankzugriffe zu reduzieren.\n\n" +
					"Indizes: Häufig abgefragte Spalten indizieren, ohne die Schreiblast zu stark zu erhöhen.\n\n" +
					"Replikation: Master-Slave-Replikation für leseintensive Szenarien, um Lesezugriffe auf Replikate zu " +
					"verteilen.\n\n" +
					"Partitionierung: Große Tabellen aufteilen, damit Abfragen nur relevante Teile durchsuchen.\n\n" +
					"Konfiguration und Hardware: Buffergrößen anpassen und leistungsstarke Hardware einsetzen. Bei sehr " +
					"hohen Skalierungsanforderungen kann zusätzlich eine NoSQL-Datenbank oder Polyglot Persistence sinnvoll " +
					"sein.",
			},
			{
				Question: "2- Können Sie ein Beispiel für ein Schema-Design für eine E-Commerce-Anwendung beschreiben?",
				Answer: "Vier Tabellen bilden den Kern:\n\n" +
					"Customers: id (Primärschlüssel), first_name, last_name, email (eindeutig), address, city, " +
					"postal_code, country, phone_number.\n\n" +
					"Products: id, name, description, price, category, inventory.\n\n" +
					"Orders: id, customer_id (Fremdschlüssel auf Customers), order_date, shipping_address, " +
					"billing_address.\n\n" +
					"OrderItems: id, order_id (Fremdschlüssel auf Orders), product_id (Fremdschlüssel auf Products), " +
					"quantity, price zum Zeitpunkt der Bestellung.\n\n" +
					"Beziehungen: Customers zu Orders 1:n, Orders zu OrderItems 1:n, Products zu OrderItems 1:n. Bestellt " +
					"ein Kunde zwei Produkte, entsteht eine Zeile in Orders und je Produkt eine Zeile in OrderItems.",
			},
			{
				Question: "3- Wie würden Sie mit dem Problem der Datenbankmigration umgehen, wenn sich das Schema in einer produktiven Umgebung ändert?",
				Answer: "Versionskontrolle für das Schema: Tools wie Flyway, Liquibase oder die Migrations-Tools des " +
					"Frameworks verwenden.\n\n" +
					"Staging-Umgebung: Jede Migration zuerst in einer Test-Umgebung durchführen.\n\n" +
					"Backups: Vor jeder Migration vollständige Backups der Produktionsdatenbank erstellen.\n\n" +
					"Downtime planen oder Zero-Downtime-Strategien implementieren, wenn die Migration umfangreiche " +
					"Änderungen umfasst.\n\n" +
					"Rollback-Strategie: Einen klaren Rückweg vorbereiten, falls Probleme auftreten.\n\n" +
					"Große Datenmengen schrittweise migrieren und die Datenbank nach der Migration sorgfältig überwachen " +
					"und validieren.",
			},
		},
	},
}
